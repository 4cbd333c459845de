package http

import (
	"net/http"

	"github.com/brandini/brandini/internal/domain/category"
)

// ListCategories handles GET /api/v1/categories
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	shopID, err := listShopFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop_id")
		return
	}

	categories, err := h.Categories.List(r.Context(), shopID)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if categories == nil {
		categories = []category.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/{id}
func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	c, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "category not found")
		return
	}
	if !sameShop(w, r, c.ShopID) {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCategory handles POST /api/v1/categories
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	shopID, ok := creationShopID(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[category.CreateRequest](w, r)
	if !ok {
		return
	}

	c, err := h.Categories.Create(r.Context(), shopID, req)
	if err != nil {
		writeDomainError(w, err, "shop not found")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCategory handles PUT /api/v1/categories/{id}
func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[category.UpdateRequest](w, r)
	if !ok {
		return
	}

	c, err := h.Categories.Update(r.Context(), id, req)
	if err != nil {
		writeDomainError(w, err, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCategory handles DELETE /api/v1/categories/{id}
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
