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

	"github.com/darkcuisine/storefront/internal/cart"
	"github.com/darkcuisine/storefront/internal/checkout"
	"github.com/darkcuisine/storefront/internal/config"
	"github.com/darkcuisine/storefront/internal/handlers"
	"github.com/darkcuisine/storefront/internal/middleware"
	"github.com/darkcuisine/storefront/internal/notify"
	"github.com/darkcuisine/storefront/internal/postgres"
	"github.com/darkcuisine/storefront/internal/repository"
	"github.com/darkcuisine/storefront/internal/service"
	"github.com/darkcuisine/storefront/pkg/logger"
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

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	// Initialize repositories: PostgreSQL when configured, in-memory
	// otherwise (local development)
	var productRepo repository.ProductRepository
	var orderRepo repository.OrderRepository

	if cfg.Database.Enabled() {
		pool, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		log.Info("connected to database", "host", cfg.Database.Host, "name", cfg.Database.Name)
		productRepo = postgres.NewProductRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
	} else {
		log.Warn("no database configured, using in-memory storage")
		productRepo = repository.NewInMemoryProductRepository()
		orderRepo = repository.NewInMemoryOrderRepository()
	}

	// Initialize order event publisher
	var events notify.Publisher = notify.NopPublisher{}
	if cfg.AMQP.Enabled() {
		rabbit, err := notify.NewRabbitPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer rabbit.Close()

		log.Info("order events enabled", "exchange", cfg.AMQP.Exchange)
		events = rabbit
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, events, log)

	// Checkout flow and per-session cart stores
	flow := checkout.NewFlow(orderService)
	sessions := cart.NewManager()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	cartHandler := handlers.NewCartHandler(productService, log)
	checkoutHandler := handlers.NewCheckoutHandler(flow, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

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
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes; every route runs inside a cart session
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(sessions))

		// Catalog endpoints
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)

		// Cart endpoints
		r.Get("/cart", cartHandler.GetCart)
		r.Delete("/cart", cartHandler.ClearCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Put("/cart/items/{productId}", cartHandler.UpdateQuantity)
		r.Post("/cart/items/{productId}/decrement", cartHandler.DecrementItem)
		r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

		// Checkout endpoints
		r.Post("/checkout", checkoutHandler.Submit)
		r.Get("/checkout/history", checkoutHandler.History)

		// Order endpoints
		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders", orderHandler.ListOrders)
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
