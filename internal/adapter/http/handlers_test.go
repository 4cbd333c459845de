package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/brandini/brandini/internal/config"
	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/category"
	"github.com/brandini/brandini/internal/domain/order"
	"github.com/brandini/brandini/internal/domain/product"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/domain/user"
	"github.com/brandini/brandini/internal/middleware"
	"github.com/brandini/brandini/internal/policy"
	"github.com/brandini/brandini/internal/port/database"
	"github.com/brandini/brandini/internal/service"
)

// stubStore covers the store methods the routed surface touches; anything
// else panics through the embedded nil interface.
type stubStore struct {
	database.Store
}

var ownerPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)

func shoppyShop() *shop.Shop {
	return &shop.Shop{
		ID:             1,
		Name:           "Shoppy",
		Subdomain:      "shoppy",
		OwnerID:        7,
		Active:         true,
		WhatsAppNumber: "+216 12 345 678",
		Theme:          shop.DefaultTheme(),
	}
}

func (s *stubStore) GetShopBySubdomain(_ context.Context, subdomain string) (*shop.Shop, error) {
	if subdomain != "shoppy" {
		return nil, domain.ErrNotFound
	}
	return shoppyShop(), nil
}

func (s *stubStore) GetShop(_ context.Context, id domain.ID) (*shop.Shop, error) {
	if id != 1 {
		return nil, domain.ErrNotFound
	}
	return shoppyShop(), nil
}

func (s *stubStore) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	if email != "owner@brandini.tn" {
		return nil, domain.ErrNotFound
	}
	return &user.User{
		ID:           7,
		Email:        "owner@brandini.tn",
		Name:         "Shoppy Owner",
		PasswordHash: string(ownerPasswordHash),
		Role:         user.RoleOwner,
		Enabled:      true,
	}, nil
}

func (s *stubStore) CreateRefreshToken(_ context.Context, _ *user.RefreshToken) error {
	return nil
}

func (s *stubStore) ListProducts(_ context.Context, _ product.Filter) ([]product.Product, error) {
	return []product.Product{{ID: 10, ShopID: 1, Name: "Linen Shirt", Slug: "linen-shirt", Price: 89.9, Active: true}}, nil
}

func (s *stubStore) ListCategories(_ context.Context, _ domain.ID) ([]category.Category, error) {
	return []category.Category{{ID: 30, ShopID: 1, Name: "Tops", Slug: "tops"}}, nil
}

func (s *stubStore) GetProduct(_ context.Context, id domain.ID) (*product.Product, error) {
	switch id {
	case 10:
		return &product.Product{ID: 10, ShopID: 1, Name: "Linen Shirt", Slug: "linen-shirt", Price: 89.9, Active: true}, nil
	case 20:
		return &product.Product{ID: 20, ShopID: 2, Name: "Denim Jacket", Slug: "denim-jacket", Price: 149.0, Active: true}, nil
	default:
		return nil, domain.ErrNotFound
	}
}

func (s *stubStore) GetProductBySlug(_ context.Context, shopID domain.ID, slug string) (*product.Product, error) {
	if shopID != 1 || slug != "linen-shirt" {
		return nil, domain.ErrNotFound
	}
	return &product.Product{ID: 10, ShopID: 1, Name: "Linen Shirt", Slug: "linen-shirt", Price: 89.9, Active: true}, nil
}

func (s *stubStore) CreateOrder(_ context.Context, o *order.Order) error {
	o.ID = 100
	o.CreatedAt = time.Now()
	return nil
}

func (s *stubStore) ShopIDsByOwner(_ context.Context, ownerID domain.ID) ([]domain.ID, error) {
	if ownerID == 7 {
		return []domain.ID{1}, nil
	}
	return nil, nil
}

func (s *stubStore) EntityShopID(_ context.Context, _ policy.ContentType, id domain.ID) (domain.ID, error) {
	switch id {
	case 10:
		return 1, nil
	case 20:
		return 2, nil
	default:
		return 0, domain.ErrNotFound
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := &stubStore{}
	authCfg := config.Defaults().Auth
	authCfg.BcryptCost = 4

	authSvc := service.NewAuthService(store, &authCfg)
	h := NewHandlers(
		authSvc,
		service.NewShopService(store),
		service.NewProductService(store),
		service.NewCategoryService(store),
		service.NewOrderService(store, nil),
		service.NewCheckoutService(store, nil, nil),
		service.NewStorefrontService(store, nil, time.Minute, nil),
		nil,
		authCfg,
	)

	engine := policy.NewEngine(store, nil)
	r := chi.NewRouter()
	r.Use(middleware.TenantResolver(middleware.NewResolver("brandini.tn", "brandini.test")))
	MountRoutes(r, h, engine, nil, nil)
	return r
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://brandini.test/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestStorefrontView_ByHost(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://shoppy.brandini.test/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var view service.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Shop.Name != "Shoppy" {
		t.Errorf("shop name = %q", view.Shop.Name)
	}
	if len(view.Products) != 1 {
		t.Errorf("products = %d, want 1", len(view.Products))
	}
}

func TestStorefrontProductBySlug(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://shoppy.brandini.test/products/linen-shirt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var p product.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Slug != "linen-shirt" {
		t.Errorf("slug = %q", p.Slug)
	}

	req = httptest.NewRequest(http.MethodGet, "http://shoppy.brandini.test/products/ghost", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown slug: status = %d, want 404", rec.Code)
	}
}

func TestStorefrontView_UnknownTenant(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://ghost.brandini.test/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCheckout_ByHost(t *testing.T) {
	router := newTestRouter(t)

	body := `{"customer_name":"Amira","customer_phone":"+216 98 765 432","items":[{"product_id":10,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "http://shoppy.brandini.test/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result service.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(result.WhatsAppURL, "wa.me/21612345678") {
		t.Errorf("whatsapp url = %q", result.WhatsAppURL)
	}
	if result.Order.Total != 2*89.9 {
		t.Errorf("total = %v", result.Order.Total)
	}
}

func TestCheckout_RejectsEmptyCart(t *testing.T) {
	router := newTestRouter(t)

	body := `{"customer_name":"Amira","customer_phone":"+216 98 765 432","items":[]}`
	req := httptest.NewRequest(http.MethodPost, "http://shoppy.brandini.test/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// ownerToken logs the shop owner in through the real login route and returns
// the issued access token.
func ownerToken(t *testing.T, router http.Handler) string {
	t.Helper()

	body := `{"email":"owner@brandini.tn","password":"sup3rsecret"}`
	req := httptest.NewRequest(http.MethodPost, "http://api.brandini.test/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp user.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.AccessToken
}

func ownerGet(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken(t, router))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestOwnShopFilterHidesForeignProduct(t *testing.T) {
	router := newTestRouter(t)

	// Product 20 belongs to another shop. Naming one's own shop in the
	// filter must not widen the scope past it.
	rec := ownerGet(t, router, "http://api.brandini.test/api/v1/products/20?shop_id=1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign product: status = %d, want 404", rec.Code)
	}

	// The owner's own product stays reachable with the same filter.
	rec = ownerGet(t, router, "http://api.brandini.test/api/v1/products/10?shop_id=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("own product: status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestOwnShopFilterKeepsShopListScoped(t *testing.T) {
	router := newTestRouter(t)

	rec := ownerGet(t, router, "http://api.brandini.test/api/v1/shops?shop_id=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var shops []shop.Shop
	if err := json.Unmarshal(rec.Body.Bytes(), &shops); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(shops) != 1 || shops[0].ID != 1 {
		t.Fatalf("shops = %+v, want only shop 1", shops)
	}
}

func TestForeignShopFilterDenied(t *testing.T) {
	router := newTestRouter(t)

	rec := ownerGet(t, router, "http://api.brandini.test/api/v1/products?shop_id=2")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestDashboardAPI_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/shops", "/api/v1/products", "/api/v1/orders"} {
		req := httptest.NewRequest(http.MethodGet, "http://api.brandini.test"+path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, rec.Code)
		}
	}
}

func TestApexRedirectsToDashboard(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://brandini.test/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "dashboard.brandini.test") {
		t.Errorf("location = %q", loc)
	}
}

func TestWriteDomainError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrValidation, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeDomainError(rec, tc.err, "missing")
		if rec.Code != tc.want {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.want)
		}
	}
}
