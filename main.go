// File: drmike/main.go
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"drmike/config"
	"drmike/handlers"
	"drmike/middleware"
	"drmike/routes"
	"drmike/services/appointment"
	"drmike/utils"
	"drmike/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	viewTTL := time.Duration(config.AppConfig.ViewTTLMinutes) * time.Minute
	if viewTTL <= 0 {
		viewTTL = 30 * time.Minute
	}
	store, err := newViewStore(ctx, viewTTL, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize view store: %v", err)
	}
	utils.StartHealthMonitor(ctx, store, 60*time.Second)

	content, err := views.DefaultContent()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid page content: %v", err)
	}

	// services.
	viewService, err := appointment.NewDefaultViewService(store, appointment.NewLogSink(logger), logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	landingHandler := handlers.NewLandingHandler(
		viewService,
		content,
		config.AppConfig.ViewCookieName,
		viewTTL,
		config.IsProduction(),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(middleware.AuthStatusMiddleware([]byte(config.AppConfig.JWTSecret), config.AppConfig.AuthCookieName))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(landingHandler), config.AppConfig.Origins())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// newViewStore picks the view-session store named by VIEW_STORE.
func newViewStore(ctx context.Context, ttl time.Duration, logger *zap.Logger) (appointment.Store, error) {
	switch config.AppConfig.ViewStore {
	case "redis":
		client, err := utils.GetViewCacheClient()
		if err != nil {
			return nil, err
		}
		logger.Info("using redis view store", zap.String("addr", config.AppConfig.RedisAddr))
		return appointment.NewRedisStore(client, ttl), nil
	default:
		store := appointment.NewMemoryStore(ttl)
		store.LogExpirations(logger)
		go store.Run(ctx)
		logger.Info("using in-memory view store")
		return store, nil
	}
}
