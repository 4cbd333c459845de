package service

import (
	"context"
	"fmt"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/category"
	"github.com/brandini/brandini/internal/port/database"
)

// CategoryService manages per-shop product categories.
type CategoryService struct {
	store database.Store
}

// NewCategoryService creates a new category service.
func NewCategoryService(store database.Store) *CategoryService {
	return &CategoryService{store: store}
}

// List returns the categories of a shop. A zero shopID lists all categories
// (platform-admin surface).
func (s *CategoryService) List(ctx context.Context, shopID domain.ID) ([]category.Category, error) {
	return s.store.ListCategories(ctx, shopID)
}

// Get returns one category by ID.
func (s *CategoryService) Get(ctx context.Context, id domain.ID) (*category.Category, error) {
	return s.store.GetCategory(ctx, id)
}

// Create adds a category to the given shop.
func (s *CategoryService) Create(ctx context.Context, shopID domain.ID, req category.CreateRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if shopID.Zero() {
		return nil, fmt.Errorf("%w: shop is required", domain.ErrValidation)
	}

	c := &category.Category{
		ShopID: shopID,
		Name:   req.Name,
		Slug:   req.Slug,
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies the editable fields to a category.
func (s *CategoryService) Update(ctx context.Context, id domain.ID, req category.UpdateRequest) (*category.Category, error) {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Slug != "" {
		c.Slug = req.Slug
	}

	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category. Products keep existing with no category.
func (s *CategoryService) Delete(ctx context.Context, id domain.ID) error {
	return s.store.DeleteCategory(ctx, id)
}
