package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id string) (*Order, []Item, error)
	GetItems(ctx context.Context, orderID string) ([]Item, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]Order, error)
	// UpdateStatus runs read-validate-write in one transaction: the current
	// status is read under a row lock, the transition checked against the
	// adjacency table, and the new status written. Returns the updated order.
	UpdateStatus(ctx context.Context, id string, to Status) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, customer_id, restaurant_id, status, delivery_address,
      special_instructions, total_amount, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
  `, o.ID, o.CustomerID, o.RestaurantID, o.Status, o.DeliveryAddress,
		o.SpecialInstructions, o.TotalAmount); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, menu_item_id, menu_item_name, quantity, price, special_instructions)
      VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, it.ID, o.ID, it.MenuItemID, it.MenuItemName, it.Quantity, it.Price, it.SpecialInstructions); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, []Item, error) {
	var o Order
	if err := r.db.QueryRow(ctx, `
    SELECT id, customer_id, restaurant_id, status, delivery_address,
      special_instructions, total_amount::text, created_at, updated_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Status, &o.DeliveryAddress,
		&o.SpecialInstructions, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, nil, ErrNotFound
	}
	items, err := r.GetItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

func (r *PGRepo) GetItems(ctx context.Context, orderID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, menu_item_id, menu_item_name, quantity, price::text, special_instructions
    FROM order_items
    WHERE order_id = $1
    ORDER BY id
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.MenuItemName,
			&it.Quantity, &it.Price, &it.SpecialInstructions); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]Order, error) {
	return r.list(ctx, `customer_id`, customerID, limit, offset)
}

func (r *PGRepo) ListByRestaurant(ctx context.Context, restaurantID string, limit, offset int) ([]Order, error) {
	return r.list(ctx, `restaurant_id`, restaurantID, limit, offset)
}

func (r *PGRepo) list(ctx context.Context, column, id string, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx, `
    SELECT id, customer_id, restaurant_id, status, delivery_address,
      special_instructions, total_amount::text, created_at, updated_at
    FROM orders WHERE `+column+`=$1
    ORDER BY created_at DESC LIMIT $2 OFFSET $3
  `, id, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Status, &o.DeliveryAddress,
			&o.SpecialInstructions, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, to Status) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current Status
	if err := tx.QueryRow(ctx, `
    SELECT status FROM orders WHERE id=$1 FOR UPDATE
  `, id).Scan(&current); err != nil {
		return nil, ErrNotFound
	}

	if err := ValidateTransition(current, to); err != nil {
		return nil, err
	}

	var o Order
	if err := tx.QueryRow(ctx, `
    UPDATE orders
    SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING id, customer_id, restaurant_id, status, delivery_address,
      special_instructions, total_amount::text, created_at, updated_at
  `, id, to).Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Status, &o.DeliveryAddress,
		&o.SpecialInstructions, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}
