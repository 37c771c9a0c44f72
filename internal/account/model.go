package account

import "time"

// Role tags a user as a restaurant or a customer. It is fixed at
// registration time; permission checks read the tag instead of probing for
// profiles.
type Role string

const (
	RoleRestaurant Role = "restaurant"
	RoleCustomer   Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleRestaurant || r == RoleCustomer
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Restaurant is the profile attached to a user with RoleRestaurant.
type Restaurant struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Customer is the profile attached to a user with RoleCustomer.
type Customer struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
