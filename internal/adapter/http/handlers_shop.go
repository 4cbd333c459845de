package http

import (
	"net/http"

	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/domain/theme"
	"github.com/brandini/brandini/internal/middleware"
)

// ListShops handles GET /api/v1/shops. Owners see their single shop; admins
// see everything.
func (h *Handlers) ListShops(w http.ResponseWriter, r *http.Request) {
	scope := middleware.ScopeFromContext(r.Context())

	if !scope.FilterShopID.Zero() {
		sh, err := h.Shops.Get(r.Context(), scope.FilterShopID)
		if err != nil {
			writeDomainError(w, err, "shop not found")
			return
		}
		writeJSON(w, http.StatusOK, []shop.Shop{*sh})
		return
	}

	shops, err := h.Shops.List(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if shops == nil {
		shops = []shop.Shop{}
	}
	writeJSON(w, http.StatusOK, shops)
}

// GetShop handles GET /api/v1/shops/{id}
func (h *Handlers) GetShop(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	scope := middleware.ScopeFromContext(r.Context())
	if !scope.FilterShopID.Zero() && id != scope.FilterShopID {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}

	sh, err := h.Shops.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "shop not found")
		return
	}
	writeJSON(w, http.StatusOK, sh)
}

// CreateShop handles POST /api/v1/shops (admin only)
func (h *Handlers) CreateShop(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[shop.CreateRequest](w, r)
	if !ok {
		return
	}

	sh, err := h.Shops.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, "owner not found")
		return
	}
	writeJSON(w, http.StatusCreated, sh)
}

// UpdateShop handles PUT /api/v1/shops/{id}
func (h *Handlers) UpdateShop(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[shop.UpdateRequest](w, r)
	if !ok {
		return
	}

	sh, err := h.Shops.Update(r.Context(), id, req)
	if err != nil {
		writeDomainError(w, err, "shop not found")
		return
	}

	h.Storefront.InvalidateShop(r.Context(), sh.Subdomain)
	writeJSON(w, http.StatusOK, sh)
}

type applyPresetRequest struct {
	PresetID string `json:"preset_id"`
}

// ApplyShopTheme handles POST /api/v1/shops/{id}/theme
func (h *Handlers) ApplyShopTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[applyPresetRequest](w, r)
	if !ok {
		return
	}

	sh, err := h.Shops.ApplyThemePreset(r.Context(), id, req.PresetID)
	if err != nil {
		writeDomainError(w, err, "shop not found")
		return
	}

	h.Storefront.InvalidateShop(r.Context(), sh.Subdomain)
	writeJSON(w, http.StatusOK, sh)
}

// DeleteShop handles DELETE /api/v1/shops/{id} (admin only)
func (h *Handlers) DeleteShop(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	sh, err := h.Shops.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "shop not found")
		return
	}
	if err := h.Shops.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "shop not found")
		return
	}

	h.Storefront.InvalidateShop(r.Context(), sh.Subdomain)
	w.WriteHeader(http.StatusNoContent)
}

// ListThemePresets handles GET /api/v1/themes. Public: the dashboard shows
// the gallery before a preset is applied.
func (h *Handlers) ListThemePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, theme.Presets)
}
