package http

import (
	"github.com/brandini/brandini/internal/adapter/ws"
	"github.com/brandini/brandini/internal/config"
	"github.com/brandini/brandini/internal/service"
)

// Handlers bundles the HTTP handlers with the services they call.
type Handlers struct {
	Auth       *service.AuthService
	Shops      *service.ShopService
	Products   *service.ProductService
	Categories *service.CategoryService
	Orders     *service.OrderService
	Checkout   *service.CheckoutService
	Storefront *service.StorefrontService
	Hub        *ws.Hub

	AuthCfg config.Auth
}

// NewHandlers creates the handler set.
func NewHandlers(
	auth *service.AuthService,
	shops *service.ShopService,
	products *service.ProductService,
	categories *service.CategoryService,
	orders *service.OrderService,
	checkout *service.CheckoutService,
	storefront *service.StorefrontService,
	hub *ws.Hub,
	authCfg config.Auth,
) *Handlers {
	return &Handlers{
		Auth:       auth,
		Shops:      shops,
		Products:   products,
		Categories: categories,
		Orders:     orders,
		Checkout:   checkout,
		Storefront: storefront,
		Hub:        hub,
		AuthCfg:    authCfg,
	}
}
