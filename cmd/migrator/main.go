package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"shop/internal/pkg/config"
	"shop/internal/pkg/dotenv"
	"shop/internal/pkg/migrations"
	"shop/internal/pkg/postgres"
	"shop/pkg/logger"
	"shop/pkg/logger/zap_adapter"
)

const serviceName = "migrator"

// usage: migrator [-env file] [up|down|status|version]
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

	env, err := dotenv.Load(os.Args[1:])
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		os.Exit(1)
	}
	if !env.EnvFileLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	command := migrations.CommandUp
	if len(env.Args) > 0 {
		command = migrations.Command(env.Args[0])
	}

	cfg, err := config.Load(config.SectionDatabase)
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	err = run(context.Background(), cfg, appLogger, command)
	if err != nil {
		mainLog.Error("migration failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger, command migrations.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	log.Info("running migrations", logger.NewField("command", string(command)))

	return migrations.Run(ctx, log, pool, command)
}
