package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	application "shop/internal/app"
	"shop/internal/handlers/rest/pay_post"
	"shop/internal/pkg/config"
	"shop/internal/pkg/dotenv"
	metrics_system "shop/internal/pkg/metrics"
	"shop/internal/pkg/server"
	"shop/pkg/logger"
	"shop/pkg/logger/zap_adapter"
)

const serviceName = "payment-service"

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

	mainLog.Info("starting payment-service application")

	env, err := dotenv.Load(os.Args[1:])
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if !env.EnvFileLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load(config.SectionServer, config.SectionPayment)
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

	businessApp := application.InitializePaymentApplication(log, cfg)

	metrics_system.StartSystemMetricsCollector(ctx)

	srv := server.New(log, cfg.Server)
	srv.Router().Handle("/pay", pay_post.New(log, businessApp.ServicePayment)).Methods(http.MethodPost)

	return srv.Run(ctx)
}
