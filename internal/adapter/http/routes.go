package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/brandini/brandini/internal/domain/user"
	"github.com/brandini/brandini/internal/middleware"
	"github.com/brandini/brandini/internal/policy"
)

// MountRoutes registers the storefront and dashboard API surfaces.
//
// Storefront routes are anonymous: the tenant resolver rewrites subdomain
// requests underneath StorefrontPrefix before they arrive here. Dashboard
// API routes require authentication, and every tenant-scoped collection
// passes through the shop-scope policy for its content type.
func MountRoutes(r chi.Router, h *Handlers, engine *policy.Engine, limiter *middleware.RateLimiter, idemKV jetstream.KeyValue) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public storefront surface.
	r.Route(middleware.StorefrontPrefix, func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Handler)
		}
		r.Get("/", h.StorefrontView)
		r.Get("/products/{slug}", h.StorefrontProduct)
		r.Get("/*", h.StorefrontView)

		if idemKV != nil {
			r.With(middleware.Idempotency(idemKV)).Post("/checkout", h.CheckoutHandler)
		} else {
			r.Post("/checkout", h.CheckoutHandler)
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(h.Auth))

		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"version": "0.1.0"})
		})

		// Auth
		r.Post("/auth/login", h.Login)
		r.Post("/auth/refresh", h.Refresh)
		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/me", h.GetCurrentUser)

		// Theme presets (public; the dashboard login screen previews them)
		r.Get("/themes/presets", h.ListThemePresets)

		// Shops
		r.Route("/shops", func(r chi.Router) {
			r.Use(middleware.ShopScope(engine, policy.TypeShop))
			r.Get("/", h.ListShops)
			r.Get("/{id}", h.GetShop)
			r.Put("/{id}", h.UpdateShop)
			r.Post("/{id}/theme", h.ApplyShopTheme)
			r.With(middleware.RequireRole(user.RolePlatformAdmin)).Post("/", h.CreateShop)
			r.With(middleware.RequireRole(user.RolePlatformAdmin)).Delete("/{id}", h.DeleteShop)
		})

		// Products
		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.ShopScope(engine, policy.TypeProduct))
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Get("/{id}", h.GetProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		// Categories
		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.ShopScope(engine, policy.TypeCategory))
			r.Get("/", h.ListCategories)
			r.Post("/", h.CreateCategory)
			r.Get("/{id}", h.GetCategory)
			r.Put("/{id}", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})

		// Orders (created by the public checkout, managed here)
		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.ShopScope(engine, policy.TypeOrder))
			r.Get("/", h.ListOrders)
			r.Get("/{id}", h.GetOrder)
			r.Put("/{id}", h.UpdateOrder)
			r.Delete("/{id}", h.DeleteOrder)
		})

		// Live order feed
		r.With(middleware.ShopScope(engine, policy.TypeOrder)).Get("/ws", h.HandleWS)

		// Users (admin only)
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireRole(user.RolePlatformAdmin))
			r.Get("/", h.ListUsersHandler)
			r.Post("/", h.CreateUserHandler)
		})
	})
}
