// Command brandini runs the multi-tenant storefront platform: the public
// storefront surface, the dashboard API and the admin CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	brhttp "github.com/brandini/brandini/internal/adapter/http"
	brnats "github.com/brandini/brandini/internal/adapter/nats"
	"github.com/brandini/brandini/internal/adapter/natskv"
	"github.com/brandini/brandini/internal/adapter/otel"
	"github.com/brandini/brandini/internal/adapter/postgres"
	"github.com/brandini/brandini/internal/adapter/ristretto"
	"github.com/brandini/brandini/internal/adapter/tiered"
	"github.com/brandini/brandini/internal/adapter/ws"
	"github.com/brandini/brandini/internal/config"
	"github.com/brandini/brandini/internal/logger"
	"github.com/brandini/brandini/internal/middleware"
	"github.com/brandini/brandini/internal/policy"
	"github.com/brandini/brandini/internal/service"
)

const serviceName = "brandini-core"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "admin" {
		if err := runAdmin(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, logCloser := logger.New(cfg.Logging)
	slog.SetDefault(log)
	defer logCloser.Close()

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"prod_apex", cfg.Domains.ProdApex,
	)

	ctx := context.Background()

	// --- Telemetry ---
	otelShutdown, err := otel.Setup(ctx, cfg.Otel, serviceName)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = otelShutdown(shutdownCtx)
	}()

	metrics, err := otel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// --- Infrastructure ---
	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	slog.Info("migrations applied")

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()
	slog.Info("postgres connected")

	queue, err := brnats.Connect(ctx, cfg.NATS.URL)
	if err != nil {
		return fmt.Errorf("nats: %w", err)
	}
	defer func() { _ = queue.Drain() }()
	slog.Info("nats connected", "url", cfg.NATS.URL)

	// Shop lookup cache: in-process L1 over a shared NATS KV L2, so every
	// instance sees invalidations without a round trip per request.
	l1, err := ristretto.New(cfg.Cache.MaxSizeMB << 20)
	if err != nil {
		return fmt.Errorf("ristretto: %w", err)
	}
	defer l1.Close()

	shopKV, err := queue.KeyValue(ctx, "shop-cache", cfg.Cache.ShopTTL)
	if err != nil {
		return fmt.Errorf("shop cache bucket: %w", err)
	}
	shopCache := tiered.New(l1, natskv.New(shopKV), cfg.Cache.ShopTTL)

	idemKV, err := queue.KeyValue(ctx, "idempotency", 24*time.Hour)
	if err != nil {
		return fmt.Errorf("idempotency bucket: %w", err)
	}

	// --- Services ---
	store := postgres.NewStore(pool)
	hub := ws.NewHub()
	engine := policy.NewEngine(store, log)

	authSvc := service.NewAuthService(store, &cfg.Auth)
	shopSvc := service.NewShopService(store)
	productSvc := service.NewProductService(store)
	categorySvc := service.NewCategoryService(store)
	orderSvc := service.NewOrderService(store, queue)
	checkoutSvc := service.NewCheckoutService(store, queue, metrics)
	storefrontSvc := service.NewStorefrontService(store, shopCache, cfg.Cache.ShopTTL, metrics)

	if email := os.Getenv("BRANDINI_ADMIN_EMAIL"); email != "" {
		if err := authSvc.SeedPlatformAdmin(ctx, email, os.Getenv("BRANDINI_ADMIN_PASSWORD")); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}
	authSvc.StartTokenCleanup(ctx, time.Hour)

	// Bridge order events from NATS onto shop-scoped websockets.
	bridge := service.NewEventBridge(queue, hub)
	if err := bridge.Start(ctx); err != nil {
		return fmt.Errorf("event bridge: %w", err)
	}
	defer bridge.Stop()

	// --- HTTP ---
	handlers := brhttp.NewHandlers(
		authSvc, shopSvc, productSvc, categorySvc,
		orderSvc, checkoutSvc, storefrontSvc, hub, cfg.Auth,
	)

	resolver := middleware.NewResolver(cfg.Domains.ProdApex, cfg.Domains.DevApex)
	limiter := middleware.NewRateLimiter(5, 10) // checkout burst protection

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(brhttp.Logger)
	r.Use(brhttp.SecurityHeaders)
	r.Use(brhttp.CORS(cfg.Server.CORSOrigin))
	r.Use(otel.HTTPMiddleware(serviceName))
	r.Use(middleware.TenantResolver(resolver))
	r.Use(middleware.SessionGuard)

	brhttp.MountRoutes(r, handlers, engine, limiter, idemKV)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
