package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Item struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	CategoryID   string `json:"category_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	// Price is the current catalog price (NUMERIC in Postgres). Orders copy
	// it at creation time; editing it here never touches past orders.
	Price           decimal.Decimal `json:"price"`
	IsAvailable     bool            `json:"is_available"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	IsVegan         bool            `json:"is_vegan"`
	IsGlutenFree    bool            `json:"is_gluten_free"`
	PreparationTime int             `json:"preparation_time"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateCategoryRequest payload for category creation.
// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required" example:"Main Course"`
	Description string `json:"description" example:"Hot dishes"`
}

// UpdateCategoryRequest payload for partial category update.
// swagger:model UpdateCategoryRequest
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CreateItemRequest payload for menu item creation.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	Name            string `json:"name" binding:"required" example:"Margherita"`
	Description     string `json:"description" example:"Tomato, mozzarella, basil"`
	Price           string `json:"price" binding:"required" example:"9.50"`
	CategoryID      string `json:"category_id"`
	IsVegetarian    bool   `json:"is_vegetarian"`
	IsVegan         bool   `json:"is_vegan"`
	IsGlutenFree    bool   `json:"is_gluten_free"`
	PreparationTime int    `json:"preparation_time" example:"15"`
}

// UpdateItemRequest payload for partial menu item update.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	CategoryID      string `json:"category_id"`
	IsAvailable     *bool  `json:"is_available"`
	PreparationTime int    `json:"preparation_time"`
}
