package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrNoProfile  = errors.New("profile not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	// CreateWithProfile persists the user together with exactly one typed
	// profile (restaurant or customer, matching u.Role) in one transaction.
	CreateWithProfile(ctx context.Context, u *User, r *Restaurant, c *Customer) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	RestaurantByID(ctx context.Context, id string) (*Restaurant, error)
	RestaurantByUserID(ctx context.Context, userID string) (*Restaurant, error)
	CustomerByUserID(ctx context.Context, userID string) (*Customer, error)
	UpdateRestaurant(ctx context.Context, r *Restaurant) error
	UpdateCustomer(ctx context.Context, c *Customer) error

	CreateToken(ctx context.Context, key, userID string) error
	UserByToken(ctx context.Context, key string) (*User, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) CreateWithProfile(ctx context.Context, u *User, rest *Restaurant, cust *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
	`, u.ID, u.Email, u.PasswordHash, u.Role); err != nil {
		// UNIQUE on email
		return ErrEmailTaken
	}

	switch u.Role {
	case RoleRestaurant:
		if _, err := tx.Exec(ctx, `
			INSERT INTO restaurants (id, user_id, name, location, phone_number, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		`, rest.ID, u.ID, rest.Name, rest.Location, rest.PhoneNumber); err != nil {
			return err
		}
	case RoleCustomer:
		if _, err := tx.Exec(ctx, `
			INSERT INTO customers (id, user_id, phone_number, address, created_at, updated_at)
			VALUES ($1,$2,$3,$4,NOW(),NOW())
		`, cust.ID, u.ID, cust.PhoneNumber, cust.Address); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users WHERE id=$1
	`, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users WHERE email=$1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *PGRepo) RestaurantByID(ctx context.Context, id string) (*Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, location, phone_number, created_at, updated_at
		FROM restaurants WHERE id=$1
	`, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Location, &p.PhoneNumber, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, ErrNoProfile
	}
	return &p, nil
}

func (r *PGRepo) RestaurantByUserID(ctx context.Context, userID string) (*Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, location, phone_number, created_at, updated_at
		FROM restaurants WHERE user_id=$1
	`, userID).Scan(&p.ID, &p.UserID, &p.Name, &p.Location, &p.PhoneNumber, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, ErrNoProfile
	}
	return &p, nil
}

func (r *PGRepo) CustomerByUserID(ctx context.Context, userID string) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Customer
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, phone_number, address, created_at, updated_at
		FROM customers WHERE user_id=$1
	`, userID).Scan(&p.ID, &p.UserID, &p.PhoneNumber, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, ErrNoProfile
	}
	return &p, nil
}

func (r *PGRepo) UpdateRestaurant(ctx context.Context, p *Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET name = COALESCE(NULLIF($2,''), name),
		    location = COALESCE(NULLIF($3,''), location),
		    phone_number = COALESCE(NULLIF($4,''), phone_number),
		    updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.Name, p.Location, p.PhoneNumber)
	return err
}

func (r *PGRepo) UpdateCustomer(ctx context.Context, p *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		UPDATE customers
		SET phone_number = COALESCE(NULLIF($2,''), phone_number),
		    address = COALESCE(NULLIF($3,''), address),
		    updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.PhoneNumber, p.Address)
	return err
}

func (r *PGRepo) CreateToken(ctx context.Context, key, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_tokens (key, user_id, created_at) VALUES ($1,$2,NOW())
	`, key, userID)
	return err
}

func (r *PGRepo) UserByToken(ctx context.Context, key string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	err := r.db.QueryRow(ctx, `
		SELECT u.id, u.email, u.password_hash, u.role, u.created_at, u.updated_at
		FROM auth_tokens t JOIN users u ON u.id = t.user_id
		WHERE t.key=$1
	`, key).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &u, nil
}
