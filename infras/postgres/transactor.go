package postgres

import (
	"context"
	"fmt"

	"barbershop/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type txKey struct{}

// Transactor runs dependent writes as one unit when atomic writes are enabled.
// With atomic writes disabled fn runs directly against the pools and callers
// are responsible for reporting partial writes.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	Atomic() bool
}

type transactorImpl struct {
	db     *Connection
	atomic bool
}

func NewTransactor(db *Connection, cfg *config.Config) Transactor {
	return &transactorImpl{
		db:     db,
		atomic: cfg.DB.Postgres.AtomicWrites,
	}
}

func (t *transactorImpl) Atomic() bool {
	return t.atomic
}

func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if !t.atomic {
		return fn(ctx)
	}

	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	if t.db == nil || t.db.Write == nil {
		return Classify(ErrNoConnection)
	}

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return Classify(fmt.Errorf("failed to begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return Classify(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// TxFromContext returns the transaction opened by WithinTx, if any.
func TxFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)

	return tx, ok && tx != nil
}
