// Package broadcast defines the port for pushing real-time events to
// connected dashboard clients.
package broadcast

import (
	"context"

	"github.com/brandini/brandini/internal/domain"
)

// Broadcaster routes typed events to the clients of one shop. Platform-admin
// connections receive events for every shop.
type Broadcaster interface {
	BroadcastShopEvent(ctx context.Context, shopID domain.ID, eventType string, payload any)
}
