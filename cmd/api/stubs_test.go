package main

import (
	"context"
	"io"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/resto-app/resto-backend/internal/account"
	"github.com/resto-app/resto-backend/internal/httpx"
	"github.com/resto-app/resto-backend/internal/menu"
	"github.com/resto-app/resto-backend/internal/order"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

//
// ---------- STUBS ----------
//

// stubAccounts implements account.Repository in memory.
type stubAccounts struct {
	users       map[string]*account.User       // by id
	tokens      map[string]string              // token key -> user id
	restaurants map[string]*account.Restaurant // by user id
	customers   map[string]*account.Customer   // by user id
	createErr   error
}

func newStubAccounts() *stubAccounts {
	return &stubAccounts{
		users:       map[string]*account.User{},
		tokens:      map[string]string{},
		restaurants: map[string]*account.Restaurant{},
		customers:   map[string]*account.Customer{},
	}
}

func (s *stubAccounts) CreateWithProfile(ctx context.Context, u *account.User, r *account.Restaurant, c *account.Customer) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, other := range s.users {
		if other.Email == u.Email {
			return account.ErrEmailTaken
		}
	}
	s.users[u.ID] = u
	switch u.Role {
	case account.RoleRestaurant:
		s.restaurants[u.ID] = r
	case account.RoleCustomer:
		s.customers[u.ID] = c
	}
	return nil
}

func (s *stubAccounts) GetByID(ctx context.Context, id string) (*account.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, account.ErrNotFound
}

func (s *stubAccounts) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, account.ErrNotFound
}

func (s *stubAccounts) RestaurantByID(ctx context.Context, id string) (*account.Restaurant, error) {
	for _, p := range s.restaurants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, account.ErrNoProfile
}

func (s *stubAccounts) RestaurantByUserID(ctx context.Context, userID string) (*account.Restaurant, error) {
	if p, ok := s.restaurants[userID]; ok {
		return p, nil
	}
	return nil, account.ErrNoProfile
}

func (s *stubAccounts) CustomerByUserID(ctx context.Context, userID string) (*account.Customer, error) {
	if p, ok := s.customers[userID]; ok {
		return p, nil
	}
	return nil, account.ErrNoProfile
}

func (s *stubAccounts) UpdateRestaurant(ctx context.Context, r *account.Restaurant) error {
	s.restaurants[r.UserID] = r
	return nil
}

func (s *stubAccounts) UpdateCustomer(ctx context.Context, c *account.Customer) error {
	s.customers[c.UserID] = c
	return nil
}

func (s *stubAccounts) CreateToken(ctx context.Context, key, userID string) error {
	s.tokens[key] = userID
	return nil
}

func (s *stubAccounts) UserByToken(ctx context.Context, key string) (*account.User, error) {
	id, ok := s.tokens[key]
	if !ok {
		return nil, account.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// stubMenu implements menu.Repository in memory. It also serves as the order
// service's catalog.
type stubMenu struct {
	categories map[string]*menu.Category
	items      map[string]*menu.Item
}

func newStubMenu() *stubMenu {
	return &stubMenu{
		categories: map[string]*menu.Category{},
		items:      map[string]*menu.Item{},
	}
}

func (s *stubMenu) CreateCategory(ctx context.Context, c *menu.Category) error {
	s.categories[c.ID] = c
	return nil
}

func (s *stubMenu) GetCategoryByID(ctx context.Context, id string) (*menu.Category, error) {
	if c, ok := s.categories[id]; ok {
		return c, nil
	}
	return nil, menu.ErrNotFound
}

func (s *stubMenu) ListCategories(ctx context.Context, restaurantID string, limit, offset int) ([]menu.Category, error) {
	var out []menu.Category
	for _, c := range s.categories {
		if restaurantID == "" || c.RestaurantID == restaurantID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *stubMenu) UpdateCategory(ctx context.Context, c *menu.Category, active *bool) error {
	if active != nil {
		c.IsActive = *active
	}
	s.categories[c.ID] = c
	return nil
}

func (s *stubMenu) DeleteCategory(ctx context.Context, id string) (bool, error) {
	_, ok := s.categories[id]
	delete(s.categories, id)
	return ok, nil
}

func (s *stubMenu) CreateItem(ctx context.Context, it *menu.Item) error {
	s.items[it.ID] = it
	return nil
}

func (s *stubMenu) GetItemByID(ctx context.Context, id string) (*menu.Item, error) {
	if it, ok := s.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, menu.ErrNotFound
}

func (s *stubMenu) ListItems(ctx context.Context, q menu.Query) ([]menu.Item, error) {
	var out []menu.Item
	for _, it := range s.items {
		if q.RestaurantID == "" || it.RestaurantID == q.RestaurantID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (s *stubMenu) UpdateItem(ctx context.Context, it *menu.Item, updatePrice bool, available *bool) error {
	if available != nil {
		it.IsAvailable = *available
	}
	s.items[it.ID] = it
	return nil
}

func (s *stubMenu) DeleteItem(ctx context.Context, id string) (bool, error) {
	_, ok := s.items[id]
	delete(s.items, id)
	return ok, nil
}

// stubOrders implements order.Repository in memory, enforcing transitions the
// way the Postgres repo does.
type stubOrders struct {
	lastOrder *order.Order
	lastItems []order.Item
}

func (s *stubOrders) Create(ctx context.Context, o *order.Order, items []order.Item) error {
	cp := *o
	s.lastOrder = &cp
	s.lastItems = append([]order.Item(nil), items...)
	return nil
}

func (s *stubOrders) GetByID(ctx context.Context, id string) (*order.Order, []order.Item, error) {
	if s.lastOrder == nil || s.lastOrder.ID != id {
		return nil, nil, order.ErrNotFound
	}
	return s.lastOrder, s.lastItems, nil
}

func (s *stubOrders) GetItems(ctx context.Context, orderID string) ([]order.Item, error) {
	if s.lastOrder == nil || s.lastOrder.ID != orderID {
		return nil, order.ErrNotFound
	}
	return s.lastItems, nil
}

func (s *stubOrders) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]order.Order, error) {
	if s.lastOrder != nil && s.lastOrder.CustomerID == customerID {
		return []order.Order{*s.lastOrder}, nil
	}
	return []order.Order{}, nil
}

func (s *stubOrders) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]order.Order, error) {
	if s.lastOrder != nil && s.lastOrder.RestaurantID == restaurantID {
		return []order.Order{*s.lastOrder}, nil
	}
	return []order.Order{}, nil
}

func (s *stubOrders) UpdateStatus(ctx context.Context, id string, to order.Status) (*order.Order, error) {
	if s.lastOrder == nil || s.lastOrder.ID != id {
		return nil, order.ErrNotFound
	}
	if err := order.ValidateTransition(s.lastOrder.Status, to); err != nil {
		return nil, err
	}
	s.lastOrder.Status = to
	return s.lastOrder, nil
}

// asUser is a test middleware standing in for httpx.Auth.
func asUser(u *account.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			httpx.SetCurrentUser(c, u)
		}
		c.Next()
	}
}
