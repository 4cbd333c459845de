// Package database defines the database store port (interface).
package database

import (
	"context"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/category"
	"github.com/brandini/brandini/internal/domain/order"
	"github.com/brandini/brandini/internal/domain/product"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/domain/user"
)

// Store is the port interface for database operations.
type Store interface {
	// Shops
	ListShops(ctx context.Context) ([]shop.Shop, error)
	GetShop(ctx context.Context, id domain.ID) (*shop.Shop, error)
	GetShopBySubdomain(ctx context.Context, subdomain string) (*shop.Shop, error)
	ShopIDsByOwner(ctx context.Context, ownerID domain.ID) ([]domain.ID, error)
	CreateShop(ctx context.Context, sh *shop.Shop) error
	UpdateShop(ctx context.Context, sh *shop.Shop) error
	DeleteShop(ctx context.Context, id domain.ID) error

	// Users
	GetUser(ctx context.Context, id domain.ID) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	CreateUser(ctx context.Context, u *user.User) error
	UpdateUser(ctx context.Context, u *user.User) error

	// Refresh tokens
	CreateRefreshToken(ctx context.Context, rt *user.RefreshToken) error
	RotateRefreshToken(ctx context.Context, oldHash string, next *user.RefreshToken) (*user.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, id string) error
	DeleteRefreshTokensByUser(ctx context.Context, userID domain.ID) error
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)

	// Products
	ListProducts(ctx context.Context, f product.Filter) ([]product.Product, error)
	GetProduct(ctx context.Context, id domain.ID) (*product.Product, error)
	GetProductBySlug(ctx context.Context, shopID domain.ID, slug string) (*product.Product, error)
	CreateProduct(ctx context.Context, p *product.Product) error
	UpdateProduct(ctx context.Context, p *product.Product) error
	DeleteProduct(ctx context.Context, id domain.ID) error

	// Categories
	ListCategories(ctx context.Context, shopID domain.ID) ([]category.Category, error)
	GetCategory(ctx context.Context, id domain.ID) (*category.Category, error)
	CreateCategory(ctx context.Context, c *category.Category) error
	UpdateCategory(ctx context.Context, c *category.Category) error
	DeleteCategory(ctx context.Context, id domain.ID) error

	// Orders
	ListOrders(ctx context.Context, f order.Filter) ([]order.Order, error)
	GetOrder(ctx context.Context, id domain.ID) (*order.Order, error)
	GetOrderByReference(ctx context.Context, reference string) (*order.Order, error)
	CreateOrder(ctx context.Context, o *order.Order) error
	UpdateOrder(ctx context.Context, o *order.Order) error
	DeleteOrder(ctx context.Context, id domain.ID) error
}
