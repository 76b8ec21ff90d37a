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

	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/config"
	"github.com/bigpasteldabel/storefront/internal/handlers"
	"github.com/bigpasteldabel/storefront/internal/highlight"
	"github.com/bigpasteldabel/storefront/internal/middleware"
	"github.com/bigpasteldabel/storefront/internal/service"
	"github.com/bigpasteldabel/storefront/internal/store"
	"github.com/bigpasteldabel/storefront/internal/whatsapp"
	"github.com/bigpasteldabel/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"store_backend", cfg.Store.Backend,
		"log_level", cfg.LogLevel,
	)

	// Select the snapshot store
	var snapshotStore store.Store
	switch cfg.Store.Backend {
	case config.StoreFile:
		snapshotStore = store.NewFileStore(cfg.Store.FilePath)
	case config.StoreBlob:
		snapshotStore = store.NewBlobStore(cfg.Store.BlobURL)
	}

	// Load the catalog, falling back to the bundled defaults
	ctx := context.Background()
	data := store.LoadOrDefault(ctx, snapshotStore, log)
	log.Info("catalog loaded",
		"menu_items", len(data.MenuItems),
		"coupons", len(data.Coupons),
	)

	cat := catalog.New(data)
	scheduler := highlight.NewScheduler(time.Duration(cfg.Highlight.DisplayDelayMS) * time.Millisecond)

	// Initialize services
	catalogService := service.NewCatalogService(cat, snapshotStore, scheduler, log)
	orderService := service.NewOrderService(cat, whatsapp.NewFormatter(cfg.WhatsApp.Number, cfg.WhatsApp.VendorName))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	menuHandler := handlers.NewMenuHandler(catalogService, log)
	couponHandler := handlers.NewCouponHandler(catalogService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	adminHandler := handlers.NewAdminHandler(catalogService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-admin-api-secret"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/app-data", menuHandler.GetAppData)

		r.Get("/menu-items", menuHandler.ListMenuItems)
		r.Get("/menu-items/{itemID}", menuHandler.GetMenuItem)
		r.Get("/toppings", menuHandler.ListToppings)

		r.Get("/coupons", couponHandler.ListCoupons)
		r.Get("/coupons/highlight", couponHandler.GetHighlight)
		r.Get("/coupons/{couponID}", couponHandler.GetCoupon)
		r.Post("/coupons/highlight/dismiss", couponHandler.DismissHighlight)

		r.Post("/orders", orderHandler.CreateOrder)

		// Administrative endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.Admin))
			r.Post("/app-data", adminHandler.ReplaceAppData)
			r.Put("/menu-items/{itemID}/availability", adminHandler.ToggleItemAvailability)
			r.Post("/coupons", adminHandler.AddCoupon)
			r.Put("/coupons/{couponID}", adminHandler.UpdateCoupon)
			r.Put("/coupons/{couponID}/activity", adminHandler.ToggleCouponActivity)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
