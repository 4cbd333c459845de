package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/brandini/brandini/internal/domain"
)

// Event type constants for WebSocket messages.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
)

// OrderCreatedEvent is pushed to a shop's dashboard when a customer
// completes checkout.
type OrderCreatedEvent struct {
	OrderID   int64   `json:"order_id"`
	Reference string  `json:"reference"`
	Customer  string  `json:"customer"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// OrderUpdatedEvent is pushed when an order's status changes.
type OrderUpdatedEvent struct {
	OrderID   int64  `json:"order_id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// BroadcastShopEvent marshals a typed event and routes it to the shop's
// connections.
func (h *Hub) BroadcastShopEvent(ctx context.Context, shopID domain.ID, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal ws event payload", "type", eventType, "error", err)
		return
	}

	h.BroadcastShop(ctx, shopID, Message{
		Type:    eventType,
		Payload: json.RawMessage(data),
	})
}
