package http

import (
	"net/http"
	"strconv"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/product"
	"github.com/brandini/brandini/internal/middleware"
)

// creationShopID resolves which shop a created entity belongs to: owners get
// their shop stamped by the scope middleware, admins pass shop_id explicitly.
func creationShopID(w http.ResponseWriter, r *http.Request) (domain.ID, bool) {
	scope := middleware.ScopeFromContext(r.Context())
	if !scope.BodyShopID.Zero() {
		return scope.BodyShopID, true
	}

	id, err := queryID(r, "shop_id")
	if err != nil || id.Zero() {
		writeError(w, http.StatusBadRequest, "shop_id is required")
		return 0, false
	}
	return id, true
}

// listShopFilter resolves the shop filter for list endpoints: the scope's
// validated filter wins; admins may pass shop_id freely.
func listShopFilter(r *http.Request) (domain.ID, error) {
	scope := middleware.ScopeFromContext(r.Context())
	if !scope.FilterShopID.Zero() {
		return scope.FilterShopID, nil
	}
	return queryID(r, "shop_id")
}

// sameShop rejects single-entity reads that cross the scope boundary.
func sameShop(w http.ResponseWriter, r *http.Request, entityShopID domain.ID) bool {
	scope := middleware.ScopeFromContext(r.Context())
	if !scope.FilterShopID.Zero() && entityShopID != scope.FilterShopID {
		writeError(w, http.StatusNotFound, "not found")
		return false
	}
	return true
}

// ListProducts handles GET /api/v1/products
func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	shopID, err := listShopFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop_id")
		return
	}

	f := product.Filter{ShopID: shopID}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := domain.ParseID(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		f.CategoryID = id
	}
	if raw := r.URL.Query().Get("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid featured flag")
			return
		}
		f.Featured = &v
	}

	products, err := h.Products.List(r.Context(), f)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if products == nil {
		products = []product.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	p, err := h.Products.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "product not found")
		return
	}
	if !sameShop(w, r, p.ShopID) {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateProduct handles POST /api/v1/products
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	shopID, ok := creationShopID(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[product.CreateRequest](w, r)
	if !ok {
		return
	}

	p, err := h.Products.Create(r.Context(), shopID, req)
	if err != nil {
		writeDomainError(w, err, "category not found")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdateProduct handles PUT /api/v1/products/{id}
func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[product.UpdateRequest](w, r)
	if !ok {
		return
	}

	p, err := h.Products.Update(r.Context(), id, req)
	if err != nil {
		writeDomainError(w, err, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/v1/products/{id}
func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Products.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
