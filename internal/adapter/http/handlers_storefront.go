package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brandini/brandini/internal/domain/order"
	"github.com/brandini/brandini/internal/middleware"
)

// storefrontSubdomain pulls the tenant subdomain the resolver stored; a
// missing subdomain means the request never went through the resolver.
func storefrontSubdomain(w http.ResponseWriter, r *http.Request) (string, bool) {
	sd := middleware.SubdomainFromContext(r.Context())
	if sd == "" {
		writeError(w, http.StatusNotFound, "storefront not found")
		return "", false
	}
	return sd, true
}

// StorefrontView handles GET /storefront. The storefront client renders the
// whole shop from this single payload.
func (h *Handlers) StorefrontView(w http.ResponseWriter, r *http.Request) {
	sd, ok := storefrontSubdomain(w, r)
	if !ok {
		return
	}

	view, err := h.Storefront.Storefront(r.Context(), sd)
	if err != nil {
		writeDomainError(w, err, "storefront not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// StorefrontProduct handles GET /storefront/products/{slug}.
func (h *Handlers) StorefrontProduct(w http.ResponseWriter, r *http.Request) {
	sd, ok := storefrontSubdomain(w, r)
	if !ok {
		return
	}

	p, err := h.Storefront.ProductBySlug(r.Context(), sd, chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CheckoutHandler handles POST /storefront/checkout. Anonymous: the shop is
// resolved from the subdomain, never from the request body.
func (h *Handlers) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	sd, ok := storefrontSubdomain(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[order.CreateRequest](w, r)
	if !ok {
		return
	}

	result, err := h.Checkout.Checkout(r.Context(), sd, req)
	if err != nil {
		writeDomainError(w, err, "storefront not found")
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
