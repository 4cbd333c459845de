package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brandini/brandini/internal/adapter/otel"
	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/order"
	"github.com/brandini/brandini/internal/domain/shop"
	"github.com/brandini/brandini/internal/port/database"
	"github.com/brandini/brandini/internal/port/messagequeue"
)

// CheckoutService turns a public storefront cart into a stored order and a
// pre-filled WhatsApp conversation with the shop owner.
type CheckoutService struct {
	store   database.Store
	queue   messagequeue.Queue
	metrics *otel.Metrics
}

// NewCheckoutService creates a new checkout service. queue and metrics may
// be nil in tests.
func NewCheckoutService(store database.Store, queue messagequeue.Queue, metrics *otel.Metrics) *CheckoutService {
	return &CheckoutService{store: store, queue: queue, metrics: metrics}
}

// Result is what the storefront receives after a successful checkout.
type Result struct {
	Order       *order.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// Checkout validates the cart against the shop's catalog, prices it from the
// database (never from the client), stores the order and builds the WhatsApp
// handoff URL.
func (s *CheckoutService) Checkout(ctx context.Context, subdomain string, req order.CreateRequest) (*Result, error) {
	ctx, span := otel.StartCheckoutSpan(ctx, subdomain)
	defer span.End()
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	sh, err := s.store.GetShopBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, fmt.Errorf("shop lookup: %w", err)
	}
	if !sh.Active {
		return nil, fmt.Errorf("shop is not accepting orders: %w", domain.ErrNotFound)
	}
	if sh.WhatsAppNumber == "" {
		return nil, errors.New("shop has no WhatsApp number configured")
	}

	items, total, err := s.priceItems(ctx, sh.ID, req.Items)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		ShopID:          sh.ID,
		Reference:       newOrderReference(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		Total:           total,
		Status:          order.StatusPending,
		PaymentMethod:   order.PaymentCOD,
		Notes:           "Order via WhatsApp",
	}

	if err := s.store.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	s.publishCreated(ctx, o)

	if s.metrics != nil {
		s.metrics.OrdersCreated.Add(ctx, 1)
		s.metrics.CheckoutDuration.Record(ctx, time.Since(start).Seconds())
	}

	slog.Info("order created", "shop_id", sh.ID, "reference", o.Reference, "total", o.Total)

	return &Result{
		Order:       o,
		WhatsAppURL: buildWhatsAppURL(sh, o),
	}, nil
}

// priceItems resolves each cart line against the catalog. Unit prices come
// from the product row at order time.
func (s *CheckoutService) priceItems(ctx context.Context, shopID domain.ID, lines []order.CreateItem) ([]order.Item, float64, error) {
	items := make([]order.Item, 0, len(lines))
	var total float64

	for _, line := range lines {
		p, err := s.store.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, 0, fmt.Errorf("product %d: %w", line.ProductID, err)
		}
		if p.ShopID != shopID {
			return nil, 0, fmt.Errorf("product %d not sold by this shop: %w", line.ProductID, domain.ErrValidation)
		}
		if !p.Active {
			return nil, 0, fmt.Errorf("product %q is no longer available: %w", p.Name, domain.ErrValidation)
		}

		lineTotal := p.Price * float64(line.Quantity)
		items = append(items, order.Item{
			ProductID:  p.ID,
			Name:       p.Name,
			Quantity:   line.Quantity,
			UnitPrice:  p.Price,
			TotalPrice: lineTotal,
			Size:       line.Size,
			Color:      line.Color,
		})
		total += lineTotal
	}
	return items, total, nil
}

func (s *CheckoutService) publishCreated(ctx context.Context, o *order.Order) {
	if s.queue == nil {
		return
	}

	payload, err := json.Marshal(messagequeue.OrderCreatedPayload{
		OrderID:   int64(o.ID),
		ShopID:    int64(o.ShopID),
		Reference: o.Reference,
		Customer:  o.CustomerName,
		Total:     o.Total,
		ItemCount: len(o.Items),
	})
	if err != nil {
		slog.Error("marshal order created event", "order_id", o.ID, "error", err)
		return
	}
	if err := s.queue.Publish(ctx, messagequeue.SubjectOrderCreated, payload); err != nil {
		slog.Error("publish order created event", "order_id", o.ID, "error", err)
	}
}

// newOrderReference generates a short customer-facing order reference.
func newOrderReference() string {
	return "BR-" + strings.ToUpper(uuid.NewString()[:8])
}

// buildWhatsAppURL assembles the wa.me link that opens a chat with the shop
// owner, pre-filled with the order summary.
func buildWhatsAppURL(sh *shop.Shop, o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s - %s\n\n", o.Reference, sh.Name)

	for _, it := range o.Items {
		fmt.Fprintf(&b, "%dx %s", it.Quantity, it.Name)
		var opts []string
		if it.Size != "" {
			opts = append(opts, it.Size)
		}
		if it.Color != "" {
			opts = append(opts, it.Color)
		}
		if len(opts) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(opts, ", "))
		}
		fmt.Fprintf(&b, " - %.3f TND\n", it.TotalPrice)
	}

	fmt.Fprintf(&b, "\nTotal: %.3f TND\n", o.Total)
	fmt.Fprintf(&b, "Name: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", o.CustomerPhone)
	if o.CustomerAddress != "" {
		fmt.Fprintf(&b, "Address: %s\n", o.CustomerAddress)
	}

	return "https://wa.me/" + waDigits(sh.WhatsAppNumber) + "?text=" + url.QueryEscape(b.String())
}

// waDigits strips everything but digits from a phone number; wa.me links
// take the international number with no plus or spaces.
func waDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
