package messagequeue

// OrderCreatedPayload is the schema for orders.created messages, published
// by the checkout flow and consumed by the dashboard event bridge.
type OrderCreatedPayload struct {
	OrderID   int64   `json:"order_id"`
	ShopID    int64   `json:"shop_id"`
	Reference string  `json:"reference"`
	Customer  string  `json:"customer"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// OrderUpdatedPayload is the schema for orders.updated messages.
type OrderUpdatedPayload struct {
	OrderID   int64  `json:"order_id"`
	ShopID    int64  `json:"shop_id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}
