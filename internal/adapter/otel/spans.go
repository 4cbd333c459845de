package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "brandini"

// StartCheckoutSpan starts a span for a storefront checkout.
func StartCheckoutSpan(ctx context.Context, subdomain string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "checkout",
		trace.WithAttributes(
			attribute.String("shop.subdomain", subdomain),
		),
	)
}

// StartStorefrontSpan starts a span for rendering a storefront payload.
func StartStorefrontSpan(ctx context.Context, subdomain string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "storefront",
		trace.WithAttributes(
			attribute.String("shop.subdomain", subdomain),
		),
	)
}
