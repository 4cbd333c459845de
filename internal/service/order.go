package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/order"
	"github.com/brandini/brandini/internal/port/database"
	"github.com/brandini/brandini/internal/port/messagequeue"
)

// OrderService manages dashboard order operations. Order creation happens in
// the checkout service; this side covers listing and status transitions.
type OrderService struct {
	store database.Store
	queue messagequeue.Queue
}

// NewOrderService creates a new order service. queue may be nil in tests.
func NewOrderService(store database.Store, queue messagequeue.Queue) *OrderService {
	return &OrderService{store: store, queue: queue}
}

// List returns orders matching the filter.
func (s *OrderService) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	return s.store.ListOrders(ctx, f)
}

// Get returns one order by ID.
func (s *OrderService) Get(ctx context.Context, id domain.ID) (*order.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// Update applies a status transition or note edit and publishes the change.
func (s *OrderService) Update(ctx context.Context, id domain.ID, req order.UpdateRequest) (*order.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	o, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged := req.Status != "" && req.Status != o.Status
	if req.Status != "" {
		o.Status = req.Status
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}

	if err := s.store.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	if statusChanged {
		s.publishUpdated(ctx, o)
	}
	return o, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id domain.ID) error {
	return s.store.DeleteOrder(ctx, id)
}

// publishUpdated emits orders.updated. Event delivery is best-effort; the
// database write already succeeded.
func (s *OrderService) publishUpdated(ctx context.Context, o *order.Order) {
	if s.queue == nil {
		return
	}

	payload, err := json.Marshal(messagequeue.OrderUpdatedPayload{
		OrderID:   int64(o.ID),
		ShopID:    int64(o.ShopID),
		Reference: o.Reference,
		Status:    string(o.Status),
	})
	if err != nil {
		slog.Error("marshal order updated event", "order_id", o.ID, "error", err)
		return
	}
	if err := s.queue.Publish(ctx, messagequeue.SubjectOrderUpdated, payload); err != nil {
		slog.Error("publish order updated event", "order_id", o.ID, "error", err)
	}
}
