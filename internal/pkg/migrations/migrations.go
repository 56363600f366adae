package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"shop/pkg/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationsDir = "sql"

type Command string

const (
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandStatus  Command = "status"
	CommandVersion Command = "version"
)

// Run applies command to the database behind pool using the embedded SQL files.
func Run(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, command Command) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("close migrations connection", logger.NewField("error", err))
		}
	}()

	migrationsFS, err := fs.Sub(embedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrationsFS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	switch command {
	case CommandUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		for _, res := range results {
			log.Info("migration applied",
				logger.NewField("source", res.Source.Path),
				logger.NewField("duration", res.Duration.String()),
			)
		}
	case CommandDown:
		res, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		if res != nil {
			log.Info("migration rolled back", logger.NewField("source", res.Source.Path))
		}
	case CommandStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		for _, st := range statuses {
			log.Info("migration status",
				logger.NewField("source", st.Source.Path),
				logger.NewField("state", string(st.State)),
			)
		}
	case CommandVersion:
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("migrate version: %w", err)
		}
		log.Info("database version", logger.NewField("version", version))
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	return nil
}
