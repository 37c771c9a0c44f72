package order

// CreateOrderItem is one requested line item.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	MenuItemID          string `json:"menu_item_id" binding:"required" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity            int    `json:"quantity" binding:"required" example:"2"`
	SpecialInstructions string `json:"special_instructions" example:"no onions"`
}

// CreateOrderRequest is the order creation payload.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	RestaurantID        string            `json:"restaurant_id" binding:"required" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	DeliveryAddress     string            `json:"delivery_address"`
	SpecialInstructions string            `json:"special_instructions"`
	Items               []CreateOrderItem `json:"items" binding:"required"`
}

// UpdateStatusRequest is the status change payload.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted"`
}
