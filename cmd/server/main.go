package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"videostore/internal/api"
	"videostore/internal/api/handlers"
	"videostore/internal/config"
	"videostore/internal/logging"
	"videostore/internal/repository/memory"
	"videostore/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize repositories
	movieRepo := memory.NewMovieRepository()
	customerRepo := memory.NewCustomerRepository()

	// Initialize services
	notificationService := services.NewNotificationService(logger)
	catalogService := services.NewCatalogService(movieRepo, logger)
	billingService := services.NewBillingService(customerRepo, movieRepo, notificationService, cfg, logger)

	if cfg.Catalog.SeedDemoMovies {
		if _, err := catalogService.SeedDemoCatalog(context.Background()); err != nil {
			logger.Fatal("failed to seed catalogue", zap.Error(err))
		}
	}

	// Initialize handlers
	movieHandler := handlers.NewMovieHandler(catalogService)
	customerHandler := handlers.NewCustomerHandler(billingService)

	// Setup router
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	api.NewRouter(movieHandler, customerHandler, logger).Setup(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting video store server", zap.String("addr", cfg.Server.Port))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
