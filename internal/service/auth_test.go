package service

import (
	"context"
	"testing"
	"time"

	"github.com/brandini/brandini/internal/config"
	"github.com/brandini/brandini/internal/domain/user"
)

func newTestAuthService(store *mockStore) *AuthService {
	cfg := config.Auth{
		JWTSecret:          "test-secret-key-must-be-long-enough",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		BcryptCost:         4, // low cost for fast tests
	}
	return NewAuthService(store, &cfg)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	store := &mockStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	u, err := svc.Register(ctx, &user.CreateRequest{
		Email:    "owner@example.com",
		Name:     "Shop Owner",
		Password: "Password123",
		Role:     user.RoleOwner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "owner@example.com" {
		t.Errorf("email = %q, want owner@example.com", u.Email)
	}
	if u.ID.Zero() {
		t.Error("expected assigned user id")
	}

	resp, rawRefresh, err := svc.Login(ctx, user.LoginRequest{
		Email:    "owner@example.com",
		Password: "Password123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("access token is empty")
	}
	if rawRefresh == "" {
		t.Error("refresh token is empty")
	}
}

func TestAuthService_InvalidLogin(t *testing.T) {
	store := &mockStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &user.CreateRequest{
		Email:    "owner@example.com",
		Name:     "Shop Owner",
		Password: "Password123",
		Role:     user.RoleOwner,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, user.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	}); err == nil {
		t.Fatal("expected error for wrong password")
	}

	if _, _, err := svc.Login(ctx, user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Password123",
	}); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	store := &mockStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	u, err := svc.Register(ctx, &user.CreateRequest{
		Email:    "owner@example.com",
		Name:     "Shop Owner",
		Password: "Password123",
		Role:     user.RoleOwner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, _, err := svc.Login(ctx, user.LoginRequest{
		Email:    "owner@example.com",
		Password: "Password123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != u.ID {
		t.Errorf("claims user = %d, want %d", claims.UserID, u.ID)
	}
	if claims.Role != user.RoleOwner {
		t.Errorf("claims role = %q, want owner", claims.Role)
	}

	if _, err := svc.ValidateAccessToken(resp.AccessToken + "tampered"); err == nil {
		t.Error("expected error for tampered token")
	}
	if _, err := svc.ValidateAccessToken("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestAuthService_RefreshRotation(t *testing.T) {
	store := &mockStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &user.CreateRequest{
		Email:    "owner@example.com",
		Name:     "Shop Owner",
		Password: "Password123",
		Role:     user.RoleOwner,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, raw1, err := svc.Login(ctx, user.LoginRequest{
		Email:    "owner@example.com",
		Password: "Password123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	resp, raw2, err := svc.RefreshTokens(ctx, raw1)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected new access token")
	}
	if raw2 == raw1 {
		t.Error("expected a rotated refresh token")
	}

	// The consumed token must be dead.
	if _, _, err := svc.RefreshTokens(ctx, raw1); err == nil {
		t.Fatal("expected error reusing a consumed refresh token")
	}

	// The rotated token still works.
	if _, _, err := svc.RefreshTokens(ctx, raw2); err != nil {
		t.Fatalf("rotated token rejected: %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	store := &mockStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	u, err := svc.Register(ctx, &user.CreateRequest{
		Email:    "owner@example.com",
		Name:     "Shop Owner",
		Password: "Password123",
		Role:     user.RoleOwner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, raw, err := svc.Login(ctx, user.LoginRequest{
		Email:    "owner@example.com",
		Password: "Password123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, u.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, _, err := svc.RefreshTokens(ctx, raw); err == nil {
		t.Fatal("expected refresh to fail after logout")
	}
}

func TestAuthService_SeedPlatformAdmin(t *testing.T) {
	store := &mockStore{}
	svc := newTestAuthService(store)
	ctx := context.Background()

	if err := svc.SeedPlatformAdmin(ctx, "admin@brandini.tn", "Adminpass123"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	u, err := store.GetUserByEmail(ctx, "admin@brandini.tn")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if u.Role != user.RolePlatformAdmin {
		t.Errorf("role = %q, want platform_admin", u.Role)
	}

	// Second call is a no-op once users exist.
	if err := svc.SeedPlatformAdmin(ctx, "other@brandini.tn", "Adminpass123"); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if _, err := store.GetUserByEmail(ctx, "other@brandini.tn"); err == nil {
		t.Error("expected no second admin to be created")
	}
}
