package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/api"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/payments"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"github.com/aaravmahajanofficial/storefront/pkg/sendGrid"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title			Storefront API
//	@version		1.0
//	@description	Anonymous basket, shipping and checkout service.
//	@host			localhost:8080
//	@BasePath		/api/v1

//	@securityDefinitions.basic	BasicAuth

func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Otel, health.Version)
	if err != nil {
		slog.Error("❌ Error initialising tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repos.EnsureSchema(ctx); err != nil {
		slog.Error("❌ Error applying the database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)

	// Basket events
	bus := events.NewBus(events.DefaultTimeout)
	bus.Subscribe("cache", events.InvalidateBasketCache(redisCache))
	bus.Subscribe("metrics", events.CountModifications())
	bus.Subscribe("log", events.LogModifications())

	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		slog.Error("❌ Error configuring the payment gateway", slog.String("error", err.Error()))
		os.Exit(1)
	}

	emailService := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	basketService := service.NewBasketService(repos.Basket, repos.Variant, redisCache, bus)
	shippingService := service.NewShippingService(cfg.Store, cfg.Payment.StripePublishableKey)
	orderService := service.NewOrderService(repos.Order, basketService, shippingService, gateway, rateLimitRepo, redisCache)
	productRequestService := service.NewProductRequestService(repos.ProductRequest, repos.Variant, emailService)

	endpoints := &health.Endpoints{}
	if cfg.Payment.Gateway == config.GatewayStripe {
		endpoints.Stripe = stripe.NewStripeClient(cfg.Payment.StripeAPIKey)
	}

	healthHandler, err := health.NewHealthHandler(cfg, endpoints)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.Version), slog.String("gateway", cfg.Payment.Gateway))

	// Setup router
	router := api.NewRouter(api.Handlers{
		Basket:         handlers.NewBasketHandler(basketService),
		Shipping:       handlers.NewShippingHandler(shippingService),
		Order:          handlers.NewOrderHandler(orderService),
		ProductRequest: handlers.NewProductRequestHandler(productRequestService),
		Health:         healthHandler.Handler(),
	},
		session.NewResolver([]byte(cfg.Security.SessionKey), cfg.Security.SessionTTL, !cfg.Security.InsecureCookies),
		middleware.NewAdminAuth(cfg.Security.AdminUser, cfg.Security.AdminPasswordHash),
	)

	// Middleware chaining
	var handler http.Handler = router
	handler = middleware.Logging(handler)
	handler = middleware.CORS(cfg.Cors.AllowedOrigins)(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go service.NewSweeper(basketService, cfg.Basket.StaleAfterDays, cfg.Basket.SweepInterval).Run(ctx)

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Failed to flush traces", slog.String("error", err.Error()))
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
