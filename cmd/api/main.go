package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/config"
	categoryhandler "github.com/arvela/catalog-service/internal/category/handler"
	categoryrepo "github.com/arvela/catalog-service/internal/category/repository"
	categoryusecase "github.com/arvela/catalog-service/internal/category/usecase"
	inventoryhandler "github.com/arvela/catalog-service/internal/inventory/handler"
	inventoryrepo "github.com/arvela/catalog-service/internal/inventory/repository"
	inventoryusecase "github.com/arvela/catalog-service/internal/inventory/usecase"
	producthandler "github.com/arvela/catalog-service/internal/product/handler"
	productrepo "github.com/arvela/catalog-service/internal/product/repository"
	productusecase "github.com/arvela/catalog-service/internal/product/usecase"
	"github.com/arvela/catalog-service/internal/server"
	"github.com/arvela/catalog-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.LoadEnv()

	appLogger := logger.New(&logger.Config{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		File:              cfg.Logger.File,
		MaxSizeMB:         cfg.Logger.MaxSizeMB,
		MaxBackups:        cfg.Logger.MaxBackups,
		MaxAgeDays:        cfg.Logger.MaxAgeDays,
	})
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("starting catalog service",
		zap.String("env", cfg.Server.AppEnv),
		zap.String("port", cfg.Server.Port),
	)

	categoryStore := categoryrepo.NewMemoryRepository()
	productStore := productrepo.NewMemoryRepository()
	inventoryStore := inventoryrepo.NewMemoryRepository(cfg.Inventory.DefaultLowStockThreshold)

	categoryUC := categoryusecase.NewCategoryUseCase(categoryStore, productStore, appLogger)
	productUC := productusecase.NewProductUseCase(productStore, inventoryStore, appLogger)
	inventoryUC := inventoryusecase.NewInventoryUseCase(inventoryStore, productStore, appLogger)

	srv := server.New(cfg, appLogger, server.Handlers{
		Category:  categoryhandler.NewCategoryHandler(categoryUC, appLogger),
		Product:   producthandler.NewProductHandler(productUC, cfg.Pagination, appLogger),
		Inventory: inventoryhandler.NewInventoryHandler(inventoryUC, appLogger),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("server start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
