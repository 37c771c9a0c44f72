// Package menu provides the repository interface and PostgreSQL implementation
// for managing a restaurant's menu catalog.
package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("menu item not found")
	ErrDuplicateName = errors.New("name already used by this restaurant")
)

type Query struct {
	RestaurantID string
	CategoryID   string
	Limit        int
	Offset       int
}

type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context, restaurantID string, limit, offset int) ([]Category, error)
	UpdateCategory(ctx context.Context, c *Category, active *bool) error
	DeleteCategory(ctx context.Context, id string) (bool, error)

	CreateItem(ctx context.Context, it *Item) error
	GetItemByID(ctx context.Context, id string) (*Item, error)
	ListItems(ctx context.Context, q Query) ([]Item, error)
	UpdateItem(ctx context.Context, it *Item, updatePrice bool, available *bool) error
	DeleteItem(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) CreateCategory(ctx context.Context, c *Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_categories (id, restaurant_id, name, description, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
	`, c.ID, c.RestaurantID, c.Name, c.Description, c.IsActive)
	if err != nil {
		// UNIQUE (restaurant_id, name)
		return ErrDuplicateName
	}
	return nil
}

func (r *PGRepo) GetCategoryByID(ctx context.Context, id string) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Category
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, name, description, is_active, created_at, updated_at
		FROM menu_categories WHERE id=$1
	`, id).Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *PGRepo) ListCategories(ctx context.Context, restaurantID string, limit, offset int) ([]Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, description, is_active, created_at, updated_at
		FROM menu_categories
		WHERE ($1 = '' OR restaurant_id = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3
	`, restaurantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateCategory(ctx context.Context, c *Category, active *bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if active != nil {
		_, err := r.db.Exec(ctx, `
			UPDATE menu_categories
			SET name = COALESCE(NULLIF($2,''), name),
			    description = COALESCE(NULLIF($3,''), description),
			    is_active = $4,
			    updated_at = NOW()
			WHERE id = $1
		`, c.ID, c.Name, c.Description, *active)
		return err
	}

	_, err := r.db.Exec(ctx, `
		UPDATE menu_categories
		SET name = COALESCE(NULLIF($2,''), name),
		    description = COALESCE(NULLIF($3,''), description),
		    updated_at = NOW()
		WHERE id = $1
	`, c.ID, c.Name, c.Description)
	return err
}

func (r *PGRepo) DeleteCategory(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_categories WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) CreateItem(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, restaurant_id, category_id, name, description, price,
			is_available, is_vegetarian, is_vegan, is_gluten_free, preparation_time, created_at, updated_at)
		VALUES ($1,$2,NULLIF($3,''),$4,$5,$6,$7,$8,$9,$10,$11,NOW(),NOW())
	`, it.ID, it.RestaurantID, it.CategoryID, it.Name, it.Description, it.Price,
		it.IsAvailable, it.IsVegetarian, it.IsVegan, it.IsGlutenFree, it.PreparationTime)
	if err != nil {
		return ErrDuplicateName
	}
	return nil
}

func (r *PGRepo) GetItemByID(ctx context.Context, id string) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, COALESCE(category_id::text,''), name, description, price::text,
			is_available, is_vegetarian, is_vegan, is_gluten_free, preparation_time, created_at, updated_at
		FROM menu_items WHERE id=$1
	`, id).Scan(&it.ID, &it.RestaurantID, &it.CategoryID, &it.Name, &it.Description, &it.Price,
		&it.IsAvailable, &it.IsVegetarian, &it.IsVegan, &it.IsGlutenFree, &it.PreparationTime, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *PGRepo) ListItems(ctx context.Context, q Query) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, COALESCE(category_id::text,''), name, description, price::text,
			is_available, is_vegetarian, is_vegan, is_gluten_free, preparation_time, created_at, updated_at
		FROM menu_items
		WHERE ($1 = '' OR restaurant_id = $1)
		  AND ($2 = '' OR category_id::text = $2)
		ORDER BY name
		LIMIT $3 OFFSET $4
	`, q.RestaurantID, q.CategoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.CategoryID, &it.Name, &it.Description, &it.Price,
			&it.IsAvailable, &it.IsVegetarian, &it.IsVegan, &it.IsGlutenFree, &it.PreparationTime, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateItem(ctx context.Context, it *Item, updatePrice bool, available *bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if updatePrice {
		if _, err := r.db.Exec(ctx, `
			UPDATE menu_items SET price = $2, updated_at = NOW() WHERE id = $1
		`, it.ID, it.Price); err != nil {
			return err
		}
	}
	if available != nil {
		if _, err := r.db.Exec(ctx, `
			UPDATE menu_items SET is_available = $2, updated_at = NOW() WHERE id = $1
		`, it.ID, *available); err != nil {
			return err
		}
	}

	_, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = COALESCE(NULLIF($2,''), name),
		    description = COALESCE(NULLIF($3,''), description),
		    category_id = COALESCE(NULLIF($4,'')::uuid, category_id),
		    preparation_time = CASE WHEN $5 > 0 THEN $5 ELSE preparation_time END,
		    updated_at = NOW()
		WHERE id = $1
	`, it.ID, it.Name, it.Description, it.CategoryID, it.PreparationTime)
	return err
}

func (r *PGRepo) DeleteItem(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
