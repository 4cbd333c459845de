package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandini/brandini/internal/adapter/ws"
	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/port/broadcast"
	"github.com/brandini/brandini/internal/port/messagequeue"
)

// EventBridge forwards order events from NATS to the WebSocket hub so
// dashboards update live regardless of which instance handled the checkout.
type EventBridge struct {
	queue messagequeue.Queue
	hub   broadcast.Broadcaster
	stops []func()
}

// NewEventBridge creates a bridge between the queue and the hub.
func NewEventBridge(queue messagequeue.Queue, hub broadcast.Broadcaster) *EventBridge {
	return &EventBridge{queue: queue, hub: hub}
}

// Start subscribes to the order subjects. Call Stop to cancel.
func (b *EventBridge) Start(ctx context.Context) error {
	stop, err := b.queue.Subscribe(ctx, messagequeue.SubjectOrderCreated, b.onOrderCreated)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", messagequeue.SubjectOrderCreated, err)
	}
	b.stops = append(b.stops, stop)

	stop, err = b.queue.Subscribe(ctx, messagequeue.SubjectOrderUpdated, b.onOrderUpdated)
	if err != nil {
		b.Stop()
		return fmt.Errorf("subscribe %s: %w", messagequeue.SubjectOrderUpdated, err)
	}
	b.stops = append(b.stops, stop)
	return nil
}

// Stop cancels all subscriptions.
func (b *EventBridge) Stop() {
	for _, stop := range b.stops {
		stop()
	}
	b.stops = nil
}

func (b *EventBridge) onOrderCreated(ctx context.Context, _ string, data []byte) error {
	var p messagequeue.OrderCreatedPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode order created event: %w", err)
	}

	b.hub.BroadcastShopEvent(ctx, domain.ID(p.ShopID), ws.EventOrderCreated, ws.OrderCreatedEvent{
		OrderID:   p.OrderID,
		Reference: p.Reference,
		Customer:  p.Customer,
		Total:     p.Total,
		ItemCount: p.ItemCount,
	})
	return nil
}

func (b *EventBridge) onOrderUpdated(ctx context.Context, _ string, data []byte) error {
	var p messagequeue.OrderUpdatedPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode order updated event: %w", err)
	}

	b.hub.BroadcastShopEvent(ctx, domain.ID(p.ShopID), ws.EventOrderUpdated, ws.OrderUpdatedEvent{
		OrderID:   p.OrderID,
		Reference: p.Reference,
		Status:    p.Status,
	})
	return nil
}
