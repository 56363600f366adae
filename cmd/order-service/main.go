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
	"shop/internal/gateway/kafka/order_events"
	"shop/internal/handlers/rest/orders_get"
	"shop/internal/handlers/rest/orders_post"
	"shop/internal/pkg/config"
	"shop/internal/pkg/dotenv"
	"shop/internal/pkg/kafka"
	metrics_system "shop/internal/pkg/metrics"
	"shop/internal/pkg/postgres"
	"shop/internal/pkg/server"
	orderService "shop/internal/service/order"
	"shop/pkg/logger"
	"shop/pkg/logger/zap_adapter"
)

const serviceName = "order-service"

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

	mainLog.Info("starting order-service application")

	env, err := dotenv.Load(os.Args[1:])
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if !env.EnvFileLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load(
		config.SectionServer,
		config.SectionDatabase,
		config.SectionPayment,
		config.SectionKafkaProducer,
		config.SectionTasks,
	)
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

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	publisher, closePublisher, err := newEventPublisher(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer closePublisher()

	businessApp, err := application.InitializeOrderApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	srv := server.New(log, cfg.Server, pool)
	router := srv.Router()
	router.Handle("/orders", orders_post.New(log, businessApp.ServiceOrder)).Methods(http.MethodPost)
	router.Handle("/orders", orders_get.New(log, businessApp.ServiceOrder)).Methods(http.MethodGet)

	err = srv.Run(ctx)

	stop()
	businessApp.BackgroundWorkers.Wait()
	runLog.Info("background tasks stopped")

	return err
}

// newEventPublisher publishes to Kafka when brokers are configured and drops
// events otherwise.
func newEventPublisher(ctx context.Context, log logger.Logger, cfg *config.Kafka) (orderService.EventPublisher, func(), error) {
	if !cfg.Enabled() {
		log.Warn("KAFKA_BROKERS is not set, order status events will not be published")
		return order_events.NoopPublisher{}, func() {}, nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, cfg)
	if err != nil {
		return nil, nil, err
	}

	closeProducer := func() {
		if err := producer.Close(); err != nil {
			log.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}

	return order_events.New(producer, cfg.Topic), closeProducer, nil
}
