package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// AuthCookieName is the cookie carrying the dashboard access token.
const AuthCookieName = "auth_token"

// loginPath renders for logged-out users and is exempt from the guard.
const loginPath = "/dashboard/login"

// SessionGuard gates dashboard paths behind presence of the auth cookie.
// Absent cookie: redirect to the login path with the original path as the
// post-login destination. The cookie's validity is NOT checked here; the
// first downstream call carrying it is what authenticates. The guard only
// prevents rendering protected pages with no credential at all.
func SessionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, dashboardPrefix) || r.URL.Path == loginPath {
			next.ServeHTTP(w, r)
			return
		}

		if _, err := r.Cookie(AuthCookieName); err != nil {
			target := loginPath + "?redirect=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
