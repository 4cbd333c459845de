package service

import (
	"context"
	"fmt"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/product"
	"github.com/brandini/brandini/internal/port/database"
)

// ProductService manages the per-shop product catalog.
type ProductService struct {
	store database.Store
}

// NewProductService creates a new product service.
func NewProductService(store database.Store) *ProductService {
	return &ProductService{store: store}
}

// List returns products matching the filter.
func (s *ProductService) List(ctx context.Context, f product.Filter) ([]product.Product, error) {
	return s.store.ListProducts(ctx, f)
}

// Get returns one product by ID.
func (s *ProductService) Get(ctx context.Context, id domain.ID) (*product.Product, error) {
	return s.store.GetProduct(ctx, id)
}

// Create adds a product to the given shop. The shop comes from the resolved
// scope, never from the request body.
func (s *ProductService) Create(ctx context.Context, shopID domain.ID, req product.CreateRequest) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	if shopID.Zero() {
		return nil, fmt.Errorf("%w: shop is required", domain.ErrValidation)
	}

	if !req.CategoryID.Zero() {
		c, err := s.store.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("category lookup: %w", err)
		}
		if c.ShopID != shopID {
			return nil, fmt.Errorf("category %d belongs to another shop: %w", req.CategoryID, domain.ErrValidation)
		}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	p := &product.Product{
		ShopID:      shopID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		Images:      req.Images,
		Featured:    req.Featured,
		Active:      active,
	}

	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies the editable fields to a product.
func (s *ProductService) Update(ctx context.Context, id domain.ID, req product.UpdateRequest) (*product.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if !req.CategoryID.Zero() {
			c, err := s.store.GetCategory(ctx, *req.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("category lookup: %w", err)
			}
			if c.ShopID != p.ShopID {
				return nil, fmt.Errorf("category %d belongs to another shop: %w", *req.CategoryID, domain.ErrValidation)
			}
		}
		p.CategoryID = *req.CategoryID
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		p.Price = *req.Price
	}
	if req.Sizes != nil {
		p.Sizes = req.Sizes
	}
	if req.Colors != nil {
		p.Colors = req.Colors
	}
	if req.Images != nil {
		p.Images = req.Images
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := s.store.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id domain.ID) error {
	return s.store.DeleteProduct(ctx, id)
}
