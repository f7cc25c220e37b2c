// Package server wires configuration, storage, persistence, and the
// HTTP stack together, then runs the listener with graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/controllers"
	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/app/repositories"
	"github.com/shashiranjanraj/vanijya/app/routes"
	"github.com/shashiranjanraj/vanijya/app/services"
	"github.com/shashiranjanraj/vanijya/config"
	"github.com/shashiranjanraj/vanijya/pkg/cache"
	"github.com/shashiranjanraj/vanijya/pkg/database"
	"github.com/shashiranjanraj/vanijya/pkg/event"
	"github.com/shashiranjanraj/vanijya/pkg/logger"
	"github.com/shashiranjanraj/vanijya/pkg/metrics"
	"github.com/shashiranjanraj/vanijya/pkg/middleware"
	"github.com/shashiranjanraj/vanijya/pkg/reqid"
	"github.com/shashiranjanraj/vanijya/pkg/router"
	"github.com/shashiranjanraj/vanijya/pkg/storage"
)

// BuildHandler assembles the middleware stack, repositories, services,
// and controllers over the given DB handle. Exposed so tests can run
// the full HTTP surface against their own database.
func BuildHandler(db *gorm.DB) http.Handler {
	customerRepo := repositories.NewCustomerRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	customerSvc := services.NewCustomerService(customerRepo)
	accountSvc := services.NewAccountService(accountRepo, customerRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, customerRepo, productRepo)

	r := router.New()

	// Global middleware, outermost first:
	//  1. metrics   - outermost for accurate total latency
	//  2. recovery  - catches panics before they kill the goroutine
	//  3. request id
	//  4. logger    - logs request_id from context
	//  5. CORS
	//  6. rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, routes.Controllers{
		Customers: controllers.NewCustomerController(customerSvc),
		Accounts:  controllers.NewAccountController(accountSvc),
		Products:  controllers.NewProductController(productSvc),
		Orders:    controllers.NewOrderController(orderSvc),
	})

	return r.Handler()
}

// Start boots every subsystem and serves HTTP until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	closeMongo := logger.AttachMongo()
	defer closeMongo()

	db, err := database.Connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}
	storage.Connect()

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.CustomerAccount{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return err
	}

	event.Listen("order.placed", func(payload interface{}) {
		if order, ok := payload.(models.Order); ok {
			logger.Info("order placed", "order_id", order.ID, "customer_id", order.CustomerID)
		}
	})
	event.Listen("order.cancelled", func(payload interface{}) {
		if order, ok := payload.(models.Order); ok {
			logger.Info("order cancelled", "order_id", order.ID)
		}
	})

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           BuildHandler(db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("vanijya listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	event.Flush()
	return nil
}
