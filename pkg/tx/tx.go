package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager runs units of work. The transaction travels in ctx and is picked up
// by querier.Querier.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

func (m *Manager) exec(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(opts),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do runs fn in a serializable read-write transaction.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// ReadOnly runs fn against a single repeatable-read snapshot.
func (m *Manager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.exec(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}
