package service

import (
	"context"
	"time"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/category"
	"github.com/brandini/brandini/internal/domain/order"
	"github.com/brandini/brandini/internal/domain/product"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/domain/user"
	"github.com/brandini/brandini/internal/port/database"
)

// Ensure mockStore implements database.Store at compile time.
var _ database.Store = (*mockStore)(nil)

// mockStore is a minimal in-memory implementation of database.Store.
type mockStore struct {
	shops      []shop.Shop
	users      []user.User
	products   []product.Product
	categories []category.Category
	orders     []order.Order
	refresh    []user.RefreshToken
	nextID     domain.ID

	// Error hooks — set these to inject failures.
	createOrderErr error
	getShopErr     error
}

func (m *mockStore) id() domain.ID {
	m.nextID++
	return m.nextID
}

// --- Shops ---

func (m *mockStore) ListShops(_ context.Context) ([]shop.Shop, error) {
	return m.shops, nil
}

func (m *mockStore) GetShop(_ context.Context, id domain.ID) (*shop.Shop, error) {
	if m.getShopErr != nil {
		return nil, m.getShopErr
	}
	for i := range m.shops {
		if m.shops[i].ID == id {
			return &m.shops[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetShopBySubdomain(_ context.Context, subdomain string) (*shop.Shop, error) {
	if m.getShopErr != nil {
		return nil, m.getShopErr
	}
	for i := range m.shops {
		if m.shops[i].Subdomain == subdomain {
			return &m.shops[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) ShopIDsByOwner(_ context.Context, ownerID domain.ID) ([]domain.ID, error) {
	var ids []domain.ID
	for i := range m.shops {
		if m.shops[i].OwnerID == ownerID {
			ids = append(ids, m.shops[i].ID)
		}
	}
	return ids, nil
}

func (m *mockStore) CreateShop(_ context.Context, sh *shop.Shop) error {
	for i := range m.shops {
		if m.shops[i].Subdomain == sh.Subdomain {
			return domain.ErrConflict
		}
	}
	sh.ID = m.id()
	m.shops = append(m.shops, *sh)
	return nil
}

func (m *mockStore) UpdateShop(_ context.Context, sh *shop.Shop) error {
	for i := range m.shops {
		if m.shops[i].ID == sh.ID {
			m.shops[i] = *sh
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteShop(_ context.Context, id domain.ID) error {
	for i := range m.shops {
		if m.shops[i].ID == id {
			m.shops = append(m.shops[:i], m.shops[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- Users ---

func (m *mockStore) GetUser(_ context.Context, id domain.ID) (*user.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) ListUsers(_ context.Context) ([]user.User, error) {
	return m.users, nil
}

func (m *mockStore) CreateUser(_ context.Context, u *user.User) error {
	for i := range m.users {
		if m.users[i].Email == u.Email {
			return domain.ErrConflict
		}
	}
	u.ID = m.id()
	m.users = append(m.users, *u)
	return nil
}

func (m *mockStore) UpdateUser(_ context.Context, u *user.User) error {
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i] = *u
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- Refresh tokens ---

func (m *mockStore) CreateRefreshToken(_ context.Context, rt *user.RefreshToken) error {
	m.refresh = append(m.refresh, *rt)
	return nil
}

func (m *mockStore) RotateRefreshToken(_ context.Context, oldHash string, next *user.RefreshToken) (*user.RefreshToken, error) {
	for i := range m.refresh {
		if m.refresh[i].TokenHash == oldHash {
			old := m.refresh[i]
			m.refresh = append(m.refresh[:i], m.refresh[i+1:]...)
			if time.Now().After(old.ExpiresAt) {
				return nil, domain.ErrNotFound
			}
			next.UserID = old.UserID
			m.refresh = append(m.refresh, *next)
			return &old, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) DeleteRefreshToken(_ context.Context, id string) error {
	for i := range m.refresh {
		if m.refresh[i].ID == id {
			m.refresh = append(m.refresh[:i], m.refresh[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockStore) DeleteRefreshTokensByUser(_ context.Context, userID domain.ID) error {
	kept := m.refresh[:0]
	for _, rt := range m.refresh {
		if rt.UserID != userID {
			kept = append(kept, rt)
		}
	}
	m.refresh = kept
	return nil
}

func (m *mockStore) DeleteExpiredRefreshTokens(_ context.Context) (int64, error) {
	var n int64
	kept := m.refresh[:0]
	for _, rt := range m.refresh {
		if time.Now().After(rt.ExpiresAt) {
			n++
			continue
		}
		kept = append(kept, rt)
	}
	m.refresh = kept
	return n, nil
}

// --- Products ---

func (m *mockStore) ListProducts(_ context.Context, f product.Filter) ([]product.Product, error) {
	var out []product.Product
	for _, p := range m.products {
		if !f.ShopID.Zero() && p.ShopID != f.ShopID {
			continue
		}
		if !f.CategoryID.Zero() && p.CategoryID != f.CategoryID {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		if f.ActiveOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockStore) GetProduct(_ context.Context, id domain.ID) (*product.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetProductBySlug(_ context.Context, shopID domain.ID, slug string) (*product.Product, error) {
	for i := range m.products {
		if m.products[i].ShopID == shopID && m.products[i].Slug == slug {
			return &m.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateProduct(_ context.Context, p *product.Product) error {
	p.ID = m.id()
	m.products = append(m.products, *p)
	return nil
}

func (m *mockStore) UpdateProduct(_ context.Context, p *product.Product) error {
	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteProduct(_ context.Context, id domain.ID) error {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- Categories ---

func (m *mockStore) ListCategories(_ context.Context, shopID domain.ID) ([]category.Category, error) {
	var out []category.Category
	for _, c := range m.categories {
		if !shopID.Zero() && c.ShopID != shopID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockStore) GetCategory(_ context.Context, id domain.ID) (*category.Category, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateCategory(_ context.Context, c *category.Category) error {
	c.ID = m.id()
	m.categories = append(m.categories, *c)
	return nil
}

func (m *mockStore) UpdateCategory(_ context.Context, c *category.Category) error {
	for i := range m.categories {
		if m.categories[i].ID == c.ID {
			m.categories[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteCategory(_ context.Context, id domain.ID) error {
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- Orders ---

func (m *mockStore) ListOrders(_ context.Context, f order.Filter) ([]order.Order, error) {
	var out []order.Order
	for _, o := range m.orders {
		if !f.ShopID.Zero() && o.ShopID != f.ShopID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *mockStore) GetOrder(_ context.Context, id domain.ID) (*order.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			return &m.orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) GetOrderByReference(_ context.Context, reference string) (*order.Order, error) {
	for i := range m.orders {
		if m.orders[i].Reference == reference {
			return &m.orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) CreateOrder(_ context.Context, o *order.Order) error {
	if m.createOrderErr != nil {
		return m.createOrderErr
	}
	o.ID = m.id()
	m.orders = append(m.orders, *o)
	return nil
}

func (m *mockStore) UpdateOrder(_ context.Context, o *order.Order) error {
	for i := range m.orders {
		if m.orders[i].ID == o.ID {
			m.orders[i] = *o
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockStore) DeleteOrder(_ context.Context, id domain.ID) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
