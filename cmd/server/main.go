package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/stockval/internal/adapter/http"
	"github.com/iho/stockval/internal/adapter/http/handler"
	postgresRepo "github.com/iho/stockval/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/stockval/internal/adapter/repository/redis"
	"github.com/iho/stockval/internal/infrastructure/config"
	"github.com/iho/stockval/internal/infrastructure/idgen"
	"github.com/iho/stockval/internal/infrastructure/logger"
	"github.com/iho/stockval/internal/infrastructure/logging"
	"github.com/iho/stockval/internal/infrastructure/metrics"
	"github.com/iho/stockval/internal/infrastructure/postgres"
	"github.com/iho/stockval/internal/infrastructure/redis"
	"github.com/iho/stockval/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zlog := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = zlog

	appLogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx := context.Background()

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			zlog.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	zlog.Info().Msg("connected to postgres")

	// Redis is optional: without it every report is recomputed per request.
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		zlog.Info().Msg("connected to redis")
	} else {
		zlog.Warn().Msg("redis disabled, report caching is off")
	}

	mets := metrics.New()

	itemRepo := postgresRepo.NewItemRepository(pool, mets)
	snapshotRepo := postgresRepo.NewSnapshotRepository(pool, mets)
	txnRepo := postgresRepo.NewTransactionRepository(pool, mets)
	paramRepo := postgresRepo.NewItemParameterRepository(pool, mets)

	var cache usecase.Cache
	if redisClient != nil {
		cache = redisRepo.NewCache(redisClient)
	}

	idGen := idgen.NewULIDGenerator()

	stockUC := usecase.NewStockReportUseCase(itemRepo, snapshotRepo, txnRepo, cache, idGen, mets, appLogger, cfg.ReportCacheTTL)
	balanceUC := usecase.NewBalanceReportUseCase(itemRepo, snapshotRepo, txnRepo, cache, idGen, mets, appLogger, cfg.ReportCacheTTL)
	ledgerUC := usecase.NewItemLedgerUseCase(itemRepo, snapshotRepo, txnRepo, idGen, mets, appLogger)
	catalogUC := usecase.NewCatalogUseCase(itemRepo, paramRepo)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler: handler.NewReportHandler(stockUC, balanceUC),
		LedgerHandler: handler.NewLedgerHandler(ledgerUC),
		ItemHandler:   handler.NewItemHandler(catalogUC),
		HealthHandler: handler.NewHealthHandler(pool, redisClient),
		Logger:        zlog,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		zlog.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("server forced to shutdown")
	}

	zlog.Info().Msg("server stopped")
}
