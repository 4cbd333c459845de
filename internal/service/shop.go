package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/domain/theme"
	"github.com/brandini/brandini/internal/domain/user"
	"github.com/brandini/brandini/internal/port/database"
)

// ShopService manages tenant provisioning and settings.
type ShopService struct {
	store database.Store
}

// NewShopService creates a new shop service.
func NewShopService(store database.Store) *ShopService {
	return &ShopService{store: store}
}

// List returns all shops. Platform-admin surface; owner calls are scoped by
// the shop-scope middleware before they reach the store.
func (s *ShopService) List(ctx context.Context) ([]shop.Shop, error) {
	return s.store.ListShops(ctx)
}

// Get returns one shop by ID.
func (s *ShopService) Get(ctx context.Context, id domain.ID) (*shop.Shop, error) {
	return s.store.GetShop(ctx, id)
}

// GetBySubdomain returns one shop by its subdomain.
func (s *ShopService) GetBySubdomain(ctx context.Context, subdomain string) (*shop.Shop, error) {
	return s.store.GetShopBySubdomain(ctx, subdomain)
}

// Create provisions a new shop for an owner. One shop per owner: the policy
// engine refuses to resolve multi-shop owners, so the invariant is enforced
// here at provisioning time.
func (s *ShopService) Create(ctx context.Context, req shop.CreateRequest) (*shop.Shop, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	owner, err := s.store.GetUser(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("owner lookup: %w", err)
	}
	if owner.Role == user.RolePlatformAdmin {
		return nil, fmt.Errorf("%w: platform admins cannot own shops", domain.ErrValidation)
	}

	owned, err := s.store.ShopIDsByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("owned shops lookup: %w", err)
	}
	if len(owned) > 0 {
		return nil, fmt.Errorf("user %d already owns a shop: %w", req.OwnerID, domain.ErrConflict)
	}

	sh := &shop.Shop{
		Name:           req.Name,
		Subdomain:      req.Subdomain,
		OwnerID:        req.OwnerID,
		Active:         true,
		WhatsAppNumber: req.WhatsAppNumber,
		Theme:          shop.DefaultTheme(),
	}

	if err := s.store.CreateShop(ctx, sh); err != nil {
		return nil, err
	}

	slog.Info("shop provisioned", "shop_id", sh.ID, "subdomain", sh.Subdomain, "owner_id", sh.OwnerID)
	return sh, nil
}

// Update applies owner-editable settings. The subdomain and owner are
// immutable after provisioning.
func (s *ShopService) Update(ctx context.Context, id domain.ID, req shop.UpdateRequest) (*shop.Shop, error) {
	sh, err := s.store.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		sh.Name = req.Name
	}
	if req.Description != nil {
		sh.Description = *req.Description
	}
	if req.WhatsAppNumber != nil {
		sh.WhatsAppNumber = *req.WhatsAppNumber
	}
	if req.Active != nil {
		sh.Active = *req.Active
	}
	if req.Theme != nil {
		if err := req.Theme.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
		}
		sh.Theme = *req.Theme
	}
	if req.Contact != nil {
		sh.Contact = *req.Contact
	}

	if err := s.store.UpdateShop(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

// ApplyThemePreset replaces the shop's theme with a named preset.
func (s *ShopService) ApplyThemePreset(ctx context.Context, id domain.ID, presetID string) (*shop.Shop, error) {
	preset := theme.ByID(presetID)
	if preset == nil {
		return nil, fmt.Errorf("unknown theme preset %q: %w", presetID, domain.ErrValidation)
	}

	sh, err := s.store.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	sh.Theme = preset.Values
	if err := s.store.UpdateShop(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

// Delete removes a shop and everything in it.
func (s *ShopService) Delete(ctx context.Context, id domain.ID) error {
	if id.Zero() {
		return errors.New("shop id is required")
	}
	return s.store.DeleteShop(ctx, id)
}
