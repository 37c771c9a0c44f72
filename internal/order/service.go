package order

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/resto-app/resto-backend/internal/account"
	"github.com/resto-app/resto-backend/internal/menu"
)

// Catalog resolves menu items: current price and availability flag.
type Catalog interface {
	GetItemByID(ctx context.Context, id string) (*menu.Item, error)
}

// Directory resolves restaurant references.
type Directory interface {
	RestaurantByID(ctx context.Context, id string) (*account.Restaurant, error)
}

type Service struct {
	repo      Repository
	catalog   Catalog
	directory Directory
}

func NewService(repo Repository, catalog Catalog, directory Directory) *Service {
	return &Service{repo: repo, catalog: catalog, directory: directory}
}

// Create validates the requested items against the target restaurant's
// catalog, snapshots each item's current price, computes the total and
// persists everything atomically. Any item failing validation fails the whole
// order; nothing is persisted.
func (s *Service) Create(ctx context.Context, customerID string, req CreateOrderRequest) (*Order, []Item, error) {
	if len(req.Items) == 0 {
		return nil, nil, invalidf("order must contain at least one item")
	}

	if _, err := s.directory.RestaurantByID(ctx, req.RestaurantID); err != nil {
		return nil, nil, invalidf("invalid restaurant")
	}

	o := &Order{
		ID:                  uuid.NewString(),
		CustomerID:          customerID,
		RestaurantID:        req.RestaurantID,
		Status:              StatusPending,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
	}

	items := make([]Item, 0, len(req.Items))
	for _, in := range req.Items {
		if in.Quantity <= 0 {
			return nil, nil, invalidf("quantity must be a positive integer")
		}
		mi, err := s.catalog.GetItemByID(ctx, in.MenuItemID)
		if err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				return nil, nil, invalidf("invalid menu item %s", in.MenuItemID)
			}
			return nil, nil, err
		}
		if mi.RestaurantID != req.RestaurantID {
			return nil, nil, invalidf("menu item %s does not belong to this restaurant", mi.ID)
		}
		if !mi.IsAvailable {
			return nil, nil, invalidf("menu item %s is currently unavailable", mi.ID)
		}
		items = append(items, Item{
			ID:                  uuid.NewString(),
			OrderID:             o.ID,
			MenuItemID:          mi.ID,
			MenuItemName:        mi.Name,
			Quantity:            in.Quantity,
			Price:               mi.Price, // snapshot, never updated afterwards
			SpecialInstructions: in.SpecialInstructions,
		})
	}

	o.TotalAmount = RecalculateTotal(items)

	if err := s.repo.Create(ctx, o, items); err != nil {
		return nil, nil, err
	}
	log.Printf("[order] created id=%s restaurant=%s items=%d total=%s",
		o.ID, o.RestaurantID, len(items), o.TotalAmount.StringFixed(2))
	return o, items, nil
}

// UpdateStatus moves the order to the requested status. The repository runs
// the read-validate-write sequence in one transaction so concurrent updates
// cannot both apply.
func (s *Service) UpdateStatus(ctx context.Context, id string, requested Status) (*Order, error) {
	if !requested.Valid() {
		return nil, invalidf("unknown status '%s'", requested)
	}
	o, err := s.repo.UpdateStatus(ctx, id, requested)
	if err != nil {
		return nil, err
	}
	log.Printf("[order] status id=%s -> %s", id, requested)
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, []Item, error) {
	return s.repo.GetByID(ctx, id)
}
