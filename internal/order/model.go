package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	RestaurantID string `json:"restaurant_id"`
	Status       Status `json:"status"`
	// TotalAmount is derived: it always equals the sum of the item subtotals
	// as of the last committed write (NUMERIC(10,2) in Postgres).
	TotalAmount         decimal.Decimal `json:"total_amount"`
	DeliveryAddress     string          `json:"delivery_address,omitempty"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type Item struct {
	ID         string `json:"id"`
	OrderID    string `json:"order_id"`
	MenuItemID string `json:"menu_item_id"`
	// MenuItemName and Price are snapshots taken when the order was created.
	// Later catalog edits never touch them.
	MenuItemName        string          `json:"menu_item_name"`
	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `json:"price"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// Subtotal is price × quantity, exact decimal arithmetic.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MarshalJSON adds the computed subtotal to item projections.
func (i Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return json.Marshal(struct {
		alias
		Subtotal decimal.Decimal `json:"subtotal"`
	}{alias(i), i.Subtotal()})
}

// RecalculateTotal sums the subtotals of items. It is the only way an order
// total is ever produced, and it is idempotent: summing the same items twice
// yields the same decimal value.
func RecalculateTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
