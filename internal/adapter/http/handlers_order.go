package http

import (
	"net/http"

	"github.com/brandini/brandini/internal/domain/order"
)

// ListOrders handles GET /api/v1/orders
func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	shopID, err := listShopFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop_id")
		return
	}

	f := order.Filter{ShopID: shopID}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := order.Status(raw)
		if !order.ValidStatuses[st] {
			writeError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		f.Status = st
	}

	orders, err := h.Orders.List(r.Context(), f)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	o, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "order not found")
		return
	}
	if !sameShop(w, r, o.ShopID) {
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// UpdateOrder handles PUT /api/v1/orders/{id}
func (h *Handlers) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[order.UpdateRequest](w, r)
	if !ok {
		return
	}

	o, err := h.Orders.Update(r.Context(), id, req)
	if err != nil {
		writeDomainError(w, err, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}
func (h *Handlers) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Orders.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "order not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
