// Package product defines the product catalog domain model.
package product

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/brandini/brandini/internal/domain"
)

// Product is a tenant-scoped catalog entry. Every product belongs to
// exactly one shop; the shop-scope policy enforces that boundary.
type Product struct {
	ID          domain.ID `json:"id"`
	ShopID      domain.ID `json:"shop_id"`
	CategoryID  domain.ID `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Sizes       []string  `json:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Featured    bool      `json:"featured"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,126}$`)

// CreateRequest holds the fields for creating a product. The shop is never
// taken from the client; the policy stamps it from the resolved scope.
type CreateRequest struct {
	CategoryID  domain.ID `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Sizes       []string  `json:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Featured    bool      `json:"featured"`
	Active      *bool     `json:"active,omitempty"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("product name is required")
	}
	if !slugRegex.MatchString(r.Slug) {
		return fmt.Errorf("invalid slug %q: must be lowercase alphanumeric or hyphens", r.Slug)
	}
	if r.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// Filter narrows product list queries. A zero field means unconstrained.
type Filter struct {
	ShopID     domain.ID
	CategoryID domain.ID
	Featured   *bool
	ActiveOnly bool
}

// UpdateRequest holds the fields that can be updated on a product.
type UpdateRequest struct {
	CategoryID  *domain.ID `json:"category_id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Sizes       []string   `json:"sizes,omitempty"`
	Colors      []string   `json:"colors,omitempty"`
	Images      []string   `json:"images,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}
