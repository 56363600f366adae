package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"shop/internal/pkg/config"
	"shop/internal/pkg/migrations"
	"shop/internal/pkg/postgres"
	"shop/pkg/logger/zap_adapter"
	"shop/pkg/querier"
	"shop/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

// setup connects to the database described by POSTGRES_* variables and
// applies the embedded migrations once per test binary.
func setup() {
	setupOnce.Do(func() {
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("integration-test")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := migrations.Run(ctx, zapLogger, pool, migrations.CommandUp); err != nil {
			panic(err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_items, orders, cart_items, products RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
