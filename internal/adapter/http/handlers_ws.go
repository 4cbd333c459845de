package http

import (
	"net/http"

	"github.com/brandini/brandini/internal/middleware"
)

// HandleWS handles GET /api/v1/ws. Owners receive events for their shop
// only; platform admins receive everything.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	scope := middleware.ScopeFromContext(r.Context())
	h.Hub.HandleWS(w, r, scope.ShopID, u.IsPlatformAdmin())
}
