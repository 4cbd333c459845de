package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/brandini/brandini/internal/domain/user"
	"github.com/brandini/brandini/internal/middleware"
)

const refreshCookieName = "brandini_refresh"

// setAuthCookies stores the access token in the dashboard session cookie and
// the refresh token in an httpOnly cookie scoped to the auth endpoints.
func (h *Handlers) setAuthCookies(w http.ResponseWriter, accessToken, rawRefresh string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    accessToken,
		Path:     "/",
		Domain:   h.AuthCfg.CookieDomain,
		HttpOnly: true,
		Secure:   h.AuthCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.AuthCfg.AccessTokenExpiry / time.Second),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    rawRefresh,
		Path:     "/api/v1/auth",
		Domain:   h.AuthCfg.CookieDomain,
		HttpOnly: true,
		Secure:   h.AuthCfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.AuthCfg.RefreshTokenExpiry / time.Second),
	})
}

// clearAuthCookies expires both auth cookies.
func (h *Handlers) clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.AuthCfg.CookieDomain,
		HttpOnly: true,
		Secure:   h.AuthCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/v1/auth",
		Domain:   h.AuthCfg.CookieDomain,
		HttpOnly: true,
		Secure:   h.AuthCfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[user.LoginRequest](w, r)
	if !ok {
		return
	}

	resp, rawRefresh, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		slog.Debug("login failed", "email", req.Email, "error", err)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.setAuthCookies(w, resp.AccessToken, rawRefresh)
	writeJSON(w, http.StatusOK, resp)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no refresh token")
		return
	}

	resp, newRawRefresh, err := h.Auth.RefreshTokens(r.Context(), cookie.Value)
	if err != nil {
		slog.Debug("token refresh failed", "error", err)
		h.clearAuthCookies(w)
		writeError(w, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	h.setAuthCookies(w, resp.AccessToken, newRawRefresh)
	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Auth.Logout(r.Context(), u.ID); err != nil {
		writeInternalError(w, err)
		return
	}

	h.clearAuthCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// GetCurrentUser handles GET /api/v1/auth/me
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ListUsersHandler handles GET /api/v1/users (admin only)
func (h *Handlers) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Auth.ListUsers(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUserHandler handles POST /api/v1/users (admin only)
func (h *Handlers) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[user.CreateRequest](w, r)
	if !ok {
		return
	}

	u, err := h.Auth.Register(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "user not found")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}
