package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brandini/brandini/internal/adapter/postgres"
	"github.com/brandini/brandini/internal/config"
	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/order"
	"github.com/brandini/brandini/internal/domain/product"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/domain/user"
	"github.com/brandini/brandini/internal/policy"
)

// setupStore creates a pgxpool connection, runs all migrations, and returns a
// ready-to-use Store. Skipped unless DATABASE_URL points at a test database.
func setupStore(t *testing.T) *postgres.Store {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping postgres integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, dsn); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, testPoolConfig(dsn))
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return postgres.NewStore(pool)
}

func testPoolConfig(dsn string) config.Postgres {
	cfg := config.Defaults().Postgres
	cfg.DSN = dsn
	cfg.MaxConns = 4
	return cfg
}

func createTestOwner(t *testing.T, s *postgres.Store) *user.User {
	t.Helper()
	u := &user.User{
		Email:        uuid.NewString() + "@example.test",
		Name:         "Test Owner",
		PasswordHash: "x",
		Role:         user.RoleOwner,
		Enabled:      true,
	}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createTestShop(t *testing.T, s *postgres.Store, ownerID domain.ID) *shop.Shop {
	t.Helper()
	sh := &shop.Shop{
		Name:      "Test Shop",
		Subdomain: "shop-" + uuid.NewString()[:8],
		OwnerID:   ownerID,
		Active:    true,
		Theme:     shop.DefaultTheme(),
	}
	if err := s.CreateShop(context.Background(), sh); err != nil {
		t.Fatalf("create shop: %v", err)
	}
	return sh
}

func TestShopRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	owner := createTestOwner(t, s)
	sh := createTestShop(t, s, owner.ID)

	got, err := s.GetShopBySubdomain(ctx, sh.Subdomain)
	if err != nil {
		t.Fatalf("get shop by subdomain: %v", err)
	}
	if got.ID != sh.ID || got.OwnerID != owner.ID {
		t.Errorf("got shop %+v, want id=%d owner=%d", got, sh.ID, owner.ID)
	}
	if got.Theme != sh.Theme {
		t.Errorf("theme not preserved: got %+v", got.Theme)
	}

	ids, err := s.ShopIDsByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("shops by owner: %v", err)
	}
	if len(ids) != 1 || ids[0] != sh.ID {
		t.Errorf("shops by owner = %v, want [%d]", ids, sh.ID)
	}
}

func TestDuplicateSubdomainConflict(t *testing.T) {
	s := setupStore(t)

	owner := createTestOwner(t, s)
	sh := createTestShop(t, s, owner.ID)

	dup := &shop.Shop{
		Name:      "Copycat",
		Subdomain: sh.Subdomain,
		OwnerID:   owner.ID,
		Theme:     shop.DefaultTheme(),
	}
	err := s.CreateShop(context.Background(), dup)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestEntityShopID(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	owner := createTestOwner(t, s)
	sh := createTestShop(t, s, owner.ID)

	p := &product.Product{
		ShopID: sh.ID,
		Name:   "Tee",
		Slug:   "tee-" + uuid.NewString()[:8],
		Price:  49.9,
		Active: true,
	}
	if err := s.CreateProduct(ctx, p); err != nil {
		t.Fatalf("create product: %v", err)
	}

	shopID, err := s.EntityShopID(ctx, policy.TypeProduct, p.ID)
	if err != nil {
		t.Fatalf("entity shop id: %v", err)
	}
	if shopID != sh.ID {
		t.Errorf("entity shop = %d, want %d", shopID, sh.ID)
	}

	if _, err := s.EntityShopID(ctx, policy.TypeProduct, 999999999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing product, got %v", err)
	}
}

func TestOrderRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	owner := createTestOwner(t, s)
	sh := createTestShop(t, s, owner.ID)

	o := &order.Order{
		ShopID:        sh.ID,
		Reference:     uuid.NewString(),
		CustomerName:  "Amira",
		CustomerPhone: "+21612345678",
		Items: []order.Item{
			{ProductID: 1, Quantity: 2, UnitPrice: 10, TotalPrice: 20},
		},
		Total:         20,
		Status:        order.StatusPending,
		PaymentMethod: order.PaymentCOD,
	}
	if err := s.CreateOrder(ctx, o); err != nil {
		t.Fatalf("create order: %v", err)
	}

	got, err := s.GetOrderByReference(ctx, o.Reference)
	if err != nil {
		t.Fatalf("get order by reference: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Errorf("items not preserved: %+v", got.Items)
	}

	got.Status = order.StatusConfirmed
	if err := s.UpdateOrder(ctx, got); err != nil {
		t.Fatalf("update order: %v", err)
	}

	listed, err := s.ListOrders(ctx, order.Filter{ShopID: sh.ID, Status: order.StatusConfirmed})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("confirmed orders = %d, want 1", len(listed))
	}
}
