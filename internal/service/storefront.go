package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brandini/brandini/internal/adapter/otel"
	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/category"
	"github.com/brandini/brandini/internal/domain/product"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/port/cache"
	"github.com/brandini/brandini/internal/port/database"
)

// StorefrontService assembles the public storefront payload for one tenant.
// Shop lookups go through the cache; the catalog is fetched concurrently.
type StorefrontService struct {
	store   database.Store
	cache   cache.Cache
	ttl     time.Duration
	metrics *otel.Metrics
}

// NewStorefrontService creates a new storefront service. cache and metrics
// may be nil in tests.
func NewStorefrontService(store database.Store, c cache.Cache, ttl time.Duration, metrics *otel.Metrics) *StorefrontService {
	return &StorefrontService{store: store, cache: c, ttl: ttl, metrics: metrics}
}

// View is the complete storefront payload for one shop.
type View struct {
	Shop       ShopView            `json:"shop"`
	Products   []product.Product   `json:"products"`
	Categories []category.Category `json:"categories"`
}

// ShopView is the public subset of a shop: no owner reference, no internal
// flags.
type ShopView struct {
	Name           string            `json:"name"`
	Subdomain      string            `json:"subdomain"`
	Description    string            `json:"description,omitempty"`
	WhatsAppNumber string            `json:"whatsapp_number,omitempty"`
	Theme          shop.Theme        `json:"theme"`
	Contact        shop.ContactLinks `json:"contact"`
}

// ResolveShop returns the active shop for a storefront subdomain,
// cache-first.
func (s *StorefrontService) ResolveShop(ctx context.Context, subdomain string) (*shop.Shop, error) {
	key := "shop:" + subdomain

	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			var sh shop.Shop
			if err := json.Unmarshal(data, &sh); err == nil {
				if s.metrics != nil {
					s.metrics.ShopCacheHits.Add(ctx, 1)
				}
				return &sh, nil
			}
			// Corrupt entry: fall through to the database.
			_ = s.cache.Delete(ctx, key)
		}
	}
	if s.metrics != nil {
		s.metrics.ShopCacheMisses.Add(ctx, 1)
	}

	sh, err := s.store.GetShopBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if !sh.Active {
		return nil, fmt.Errorf("shop %q is inactive: %w", subdomain, domain.ErrNotFound)
	}

	if s.cache != nil {
		if data, err := json.Marshal(sh); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				slog.Debug("shop cache set failed", "subdomain", subdomain, "error", err)
			}
		}
	}
	return sh, nil
}

// InvalidateShop drops a shop from the cache after a settings change.
func (s *StorefrontService) InvalidateShop(ctx context.Context, subdomain string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, "shop:"+subdomain); err != nil {
		slog.Debug("shop cache invalidate failed", "subdomain", subdomain, "error", err)
	}
}

// ProductBySlug returns one active product from the tenant's catalog, for
// product detail pages linked by slug.
func (s *StorefrontService) ProductBySlug(ctx context.Context, subdomain, slug string) (*product.Product, error) {
	sh, err := s.ResolveShop(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	p, err := s.store.GetProductBySlug(ctx, sh.ID, slug)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, fmt.Errorf("product %q is not available: %w", slug, domain.ErrNotFound)
	}
	return p, nil
}

// Storefront returns the full storefront payload for a subdomain: the shop's
// public profile plus its active products and categories.
func (s *StorefrontService) Storefront(ctx context.Context, subdomain string) (*View, error) {
	ctx, span := otel.StartStorefrontSpan(ctx, subdomain)
	defer span.End()

	sh, err := s.ResolveShop(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	var (
		products   []product.Product
		categories []category.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.store.ListProducts(gctx, product.Filter{ShopID: sh.ID, ActiveOnly: true})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.store.ListCategories(gctx, sh.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load storefront %q: %w", subdomain, err)
	}

	return &View{
		Shop: ShopView{
			Name:           sh.Name,
			Subdomain:      sh.Subdomain,
			Description:    sh.Description,
			WhatsAppNumber: sh.WhatsAppNumber,
			Theme:          sh.Theme,
			Contact:        sh.Contact,
		},
		Products:   products,
		Categories: categories,
	}, nil
}
