// Package user defines the authenticated principal for the platform.
package user

import (
	"errors"
	"net/mail"
	"time"

	"github.com/brandini/brandini/internal/domain"
)

// Role represents the authorization level of a user.
type Role string

const (
	// RoleOwner is an ordinary shop owner, scoped to their single shop.
	RoleOwner Role = "owner"
	// RolePlatformAdmin bypasses shop-scope entirely.
	RolePlatformAdmin Role = "platform_admin"
)

// ValidRoles is the set of all valid user roles.
var ValidRoles = map[Role]bool{
	RoleOwner:         true,
	RolePlatformAdmin: true,
}

// User represents a registered principal. A user owns zero or one shop;
// ownership is resolved through the shop's owner reference, not stored here.
type User struct {
	ID           domain.ID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // never serialized
	Role         Role      `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPlatformAdmin reports whether the user holds the platform-admin bypass role.
func (u *User) IsPlatformAdmin() bool {
	return u != nil && u.Role == RolePlatformAdmin
}

// CreateRequest is the input for registering a new user.
type CreateRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate checks that the CreateRequest has all required fields.
func (r *CreateRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email format")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if !ValidRoles[r.Role] {
		return errors.New("invalid role: must be owner or platform_admin")
	}
	return nil
}

// LoginRequest is the input for user authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that the LoginRequest has all required fields.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// LoginResponse is returned after successful authentication. The access
// token is also set as the auth_token cookie the session guard checks.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // seconds until access token expires
	User        User   `json:"user"`
}

// TokenClaims contains the JWT payload fields.
type TokenClaims struct {
	UserID   domain.ID `json:"sub"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	IssuedAt int64     `json:"iat"`
	Expiry   int64     `json:"exp"`
	Audience string    `json:"aud"`
	Issuer   string    `json:"iss"`
}

// RefreshToken represents a stored refresh token.
type RefreshToken struct {
	ID        string    `json:"id"`
	UserID    domain.ID `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
