// Package order defines the customer order domain model. Orders are created
// by the public checkout flow and managed from the shop dashboard.
package order

import (
	"errors"
	"time"

	"github.com/brandini/brandini/internal/domain"
)

// Status is the order fulfillment state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses is the set of all valid order statuses.
var ValidStatuses = map[Status]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// PaymentMethod is how the customer pays. WhatsApp checkout orders default
// to cash on delivery.
type PaymentMethod string

const (
	PaymentCOD PaymentMethod = "cod"
)

// Item is a single product line within an order. Unit price is captured at
// order time so later catalog edits don't rewrite order history.
type Item struct {
	ProductID  domain.ID `json:"product_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalPrice float64   `json:"total_price"`
	Size       string    `json:"size,omitempty"`
	Color      string    `json:"color,omitempty"`
}

// Order is a tenant-scoped customer order.
type Order struct {
	ID              domain.ID     `json:"id"`
	ShopID          domain.ID     `json:"shop_id"`
	Reference       string        `json:"reference"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address,omitempty"`
	Items           []Item        `json:"items"`
	Total           float64       `json:"total"`
	Status          Status        `json:"status"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CreateItem is one line of an incoming checkout request.
type CreateItem struct {
	ProductID domain.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
}

// CreateRequest is the public checkout payload. The shop is resolved from
// the storefront subdomain, never from the client.
type CreateRequest struct {
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address,omitempty"`
	Items           []CreateItem `json:"items"`
}

// Validate checks the checkout payload.
func (r *CreateRequest) Validate() error {
	if r.CustomerName == "" {
		return errors.New("customer name is required")
	}
	if r.CustomerPhone == "" {
		return errors.New("customer phone is required")
	}
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for _, it := range r.Items {
		if it.ProductID.Zero() {
			return errors.New("item product id is required")
		}
		if it.Quantity < 1 {
			return errors.New("item quantity must be at least 1")
		}
	}
	return nil
}

// Filter narrows order list queries. A zero field means unconstrained.
type Filter struct {
	ShopID domain.ID
	Status Status
}

// UpdateRequest holds the dashboard-editable order fields.
type UpdateRequest struct {
	Status Status  `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// Validate checks the update payload.
func (r *UpdateRequest) Validate() error {
	if r.Status != "" && !ValidStatuses[r.Status] {
		return errors.New("invalid status: must be pending, confirmed, delivered or cancelled")
	}
	return nil
}
