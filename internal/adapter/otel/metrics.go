package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "brandini"

// Metrics holds the platform's metric instruments.
type Metrics struct {
	OrdersCreated    metric.Int64Counter
	CheckoutDuration metric.Float64Histogram
	ShopCacheHits    metric.Int64Counter
	ShopCacheMisses  metric.Int64Counter
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.OrdersCreated, err = meter.Int64Counter("brandini.orders.created",
		metric.WithDescription("Number of orders created through checkout"))
	if err != nil {
		return nil, err
	}

	m.CheckoutDuration, err = meter.Float64Histogram("brandini.checkout.duration_seconds",
		metric.WithDescription("Checkout handling duration in seconds"))
	if err != nil {
		return nil, err
	}

	m.ShopCacheHits, err = meter.Int64Counter("brandini.shopcache.hits",
		metric.WithDescription("Storefront shop cache hits"))
	if err != nil {
		return nil, err
	}

	m.ShopCacheMisses, err = meter.Int64Counter("brandini.shopcache.misses",
		metric.WithDescription("Storefront shop cache misses"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
