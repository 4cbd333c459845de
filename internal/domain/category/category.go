// Package category defines the product category domain model.
package category

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/brandini/brandini/internal/domain"
)

// Category is a tenant-scoped grouping of products.
type Category struct {
	ID        domain.ID `json:"id"`
	ShopID    domain.ID `json:"shop_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

// CreateRequest holds the fields for creating a category.
type CreateRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Validate checks required fields.
func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("category name is required")
	}
	if !slugRegex.MatchString(r.Slug) {
		return fmt.Errorf("invalid slug %q: must be lowercase alphanumeric or hyphens", r.Slug)
	}
	return nil
}

// UpdateRequest holds the fields that can be updated on a category.
type UpdateRequest struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}
