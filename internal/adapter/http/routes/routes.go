package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "freight_pricing/docs"
	"freight_pricing/internal/adapter/cache"
	"freight_pricing/internal/adapter/http/handlers"
	"freight_pricing/internal/adapter/http/middleware"
	"freight_pricing/internal/adapter/persistence/repository"
	"freight_pricing/internal/config"
	"freight_pricing/internal/infrastructure/database"
	"freight_pricing/internal/usecase"
	"freight_pricing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run wires the stores, builds the router and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newPricingConfigRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	publishedCache, closeCache, err := newPublishedConfigCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	pricingUseCase := usecase.NewPricingConfigUseCase(repo, publishedCache, logger)
	quoteUseCase := usecase.NewQuoteUseCase(repo, publishedCache, usecase.QuoteSettings{
		Location:           cfg.Location(),
		RoadDistanceFactor: cfg.RoadDistanceFactor,
	}, logger)

	router := NewRouter(logger,
		handlers.NewPricingConfigHandler(pricingUseCase, logger),
		handlers.NewQuoteHandler(quoteUseCase, logger),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http] listening", zap.String("addr", srv.Addr), zap.String("store", cfg.ConfigStore))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NewRouter registers every route on a fresh engine.
func NewRouter(logger *zap.Logger, pricingHandler *handlers.PricingConfigHandler, quoteHandler *handlers.QuoteHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, pricingHandler)
	addQuoteRoutes(v1, quoteHandler)
	return router
}

func newPricingConfigRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IPricingConfigRepository, func(), error) {
	switch cfg.ConfigStore {
	case config.StorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.PostgresURL, cfg.StartupMaxElapsed, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repository.NewPricingConfigPostgresRepository(db, logger), closer(db, logger), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPricingConfigDynamoRepository(ddb, cfg.PricingConfigTable, logger), func() {}, nil
	}
}

func newPublishedConfigCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IPublishedConfigCache, func(), error) {
	client, err := database.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return cache.NoopPublishedConfigCache{}, func() {}, nil
	}
	return cache.NewPublishedConfigRedisCache(client, cfg.PricingCacheTTL), redisCloser(client, logger), nil
}

func closer(db *sql.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("[database][postgres] close failed", zap.Error(err))
		}
	}
}

func redisCloser(client *redis.Client, logger *zap.Logger) func() {
	return func() {
		if err := client.Close(); err != nil {
			logger.Warn("[cache][redis] close failed", zap.Error(err))
		}
	}
}
