package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	application "shop/internal/app"
	"shop/internal/handlers/rest/products_get"
	"shop/internal/handlers/rest/products_post"
	"shop/internal/pkg/config"
	"shop/internal/pkg/dotenv"
	metrics_system "shop/internal/pkg/metrics"
	"shop/internal/pkg/postgres"
	"shop/internal/pkg/redis"
	"shop/internal/pkg/server"
	catalogService "shop/internal/service/catalog"
	"shop/pkg/logger"
	"shop/pkg/logger/zap_adapter"
)

const serviceName = "catalog-service"

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(serviceName)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting catalog-service application")

	env, err := dotenv.Load(os.Args[1:])
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if !env.EnvFileLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load(config.SectionServer, config.SectionDatabase, config.SectionRedis)
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}
	if cfg.Server.ServiceName == "" {
		cfg.Server.ServiceName = serviceName
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	cache, closeCache, err := newCache(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer closeCache()

	businessApp := application.InitializeCatalogApplication(log, pool, pgxv5.DefaultCtxGetter, cache, cfg)

	metrics_system.StartSystemMetricsCollector(ctx)

	// the cache is optional, so only the database gates readiness
	srv := server.New(log, cfg.Server, pool)
	router := srv.Router()
	router.Handle("/products", products_get.New(log, businessApp.ServiceCatalog)).Methods(http.MethodGet)
	router.Handle("/products", products_post.New(log, businessApp.ServiceCatalog)).Methods(http.MethodPost)

	return srv.Run(ctx)
}

func newCache(ctx context.Context, log logger.Logger, cfg *config.Config) (catalogService.Cache, func(), error) {
	if !cfg.Redis.Enabled() {
		log.Warn("REDIS_ADDR is not set, product list caching is disabled")
		return redis.NoopCache{}, func() {}, nil
	}

	cache, err := redis.NewCache(ctx, log, &cfg.Redis, cfg.Server.ServiceName)
	if err != nil {
		return nil, nil, err
	}

	closeCache := func() {
		if err := cache.Close(); err != nil {
			log.Error("failed to close redis client", logger.NewField("error", err))
		}
	}

	return cache, closeCache, nil
}
