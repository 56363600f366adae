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
	"shop/internal/handlers/rest/cart_delete"
	"shop/internal/handlers/rest/cart_get"
	"shop/internal/handlers/rest/cart_post"
	"shop/internal/pkg/config"
	"shop/internal/pkg/dotenv"
	metrics_system "shop/internal/pkg/metrics"
	"shop/internal/pkg/postgres"
	"shop/internal/pkg/server"
	"shop/pkg/logger"
	"shop/pkg/logger/zap_adapter"
)

const serviceName = "cart-service"

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

	mainLog.Info("starting cart-service application")

	env, err := dotenv.Load(os.Args[1:])
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if !env.EnvFileLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load(config.SectionServer, config.SectionDatabase)
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

	businessApp := application.InitializeCartApplication(pool, pgxv5.DefaultCtxGetter)

	metrics_system.StartSystemMetricsCollector(ctx)

	srv := server.New(log, cfg.Server, pool)
	router := srv.Router()
	router.Handle("/cart/{user_id}", cart_get.New(log, businessApp.ServiceCart)).Methods(http.MethodGet)
	router.Handle("/cart/{user_id}", cart_post.New(log, businessApp.ServiceCart)).Methods(http.MethodPost)
	router.Handle("/cart/{user_id}", cart_delete.New(log, businessApp.ServiceCart)).Methods(http.MethodDelete)

	return srv.Run(ctx)
}
