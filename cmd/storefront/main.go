package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/buildline/storefront/internal/pkg/cache"
	"github.com/buildline/storefront/internal/pkg/telemetry"
	"github.com/buildline/storefront/internal/storefront/core/cart"
	"github.com/buildline/storefront/internal/storefront/core/checkout"
	"github.com/buildline/storefront/internal/storefront/core/checkout/attemptlog"
	attemptsqlite "github.com/buildline/storefront/internal/storefront/core/checkout/attemptlog/sqlite"
	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
	"github.com/buildline/storefront/internal/storefront/infra/adapters/catalog"
	"github.com/buildline/storefront/internal/storefront/infra/adapters/orders"
	"github.com/buildline/storefront/internal/storefront/infra/httpx"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, getEnv("OTEL_SERVICE_NAME", "storefront"))
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	apiBase := getEnv("CATALOG_API_BASE_URL", "http://localhost:8081")

	// Outbound calls to the two remote contracts carry trace context.
	upstream := &http.Client{
		Timeout:   30 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	catalogGateway := buildCatalogGateway(apiBase, upstream)
	orderGateway := orders.NewClient(apiBase, upstream)

	attempts := buildAttemptLog()

	carts := cart.NewStore()
	carts.Subscribe(func(sessionID string, c entity.Cart) {
		slog.Debug("cart updated",
			"session_id", sessionID,
			"lines", len(c.Lines),
			"total_items", c.TotalItems())
	})
	workflow := checkout.NewWorkflow(carts, checkout.NewAssembler(), orderGateway, attempts)

	handler := httpx.NewHandler(catalogGateway, carts, workflow)
	router := httpx.NewRouter(handler)

	addr := ":" + getEnv("PORT", "8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("storefront listening", "addr", addr, "catalog_api", apiBase)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
}

// buildCatalogGateway wraps the catalog client in a short-TTL cache: Redis
// when CACHE_REDIS_ADDR is set, in-process otherwise.
func buildCatalogGateway(apiBase string, upstream *http.Client) *catalog.CachedGateway {
	client := catalog.NewClient(apiBase, upstream)

	var store cache.Cache
	if addr := os.Getenv("CACHE_REDIS_ADDR"); addr != "" {
		store = cache.NewRedisCache(addr, "storefront")
		slog.Info("catalog cache backed by redis", "addr", addr)
	} else {
		store = cache.NewMemoryCache("storefront")
	}

	return catalog.NewCachedGateway(client, store, 5*time.Minute)
}

// buildAttemptLog opens the SQLite submission audit log when configured.
// Returns nil otherwise; the workflow skips persistence for a nil log.
func buildAttemptLog() attemptlog.Repository {
	path := os.Getenv("SUBMISSION_LOG_PATH")
	if path == "" {
		return nil
	}
	repo, err := attemptsqlite.Open(path)
	if err != nil {
		slog.Error("failed to open submission log, continuing without it", "path", path, "error", err)
		return nil
	}
	return repo
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
