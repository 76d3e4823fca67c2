package postgres_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"barbershop/infras/postgres"
	"barbershop/shared/failure"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "bad connection", err: driver.ErrBadConn, unavailable: true},
		{name: "connection done", err: fmt.Errorf("query: %w", sql.ErrConnDone), unavailable: true},
		{name: "deadline", err: context.DeadlineExceeded, unavailable: true},
		{name: "no connection", err: postgres.ErrNoConnection, unavailable: true},
		{name: "pq connection failure", err: &pq.Error{Code: "08006"}, unavailable: true},
		{name: "pq unique violation", err: &pq.Error{Code: "23505"}, unavailable: false},
		{name: "plain error", err: errors.New("syntax error"), unavailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postgres.Classify(tt.err)

			assert.Equal(t, tt.unavailable, errors.Is(got, failure.ErrStoreUnavailable))
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, postgres.Classify(nil))
}

func TestTransactor_NoConnection(t *testing.T) {
	cfg := newConfig(true)
	tx := postgres.NewTransactor(&postgres.Connection{}, cfg)

	called := false
	err := tx.WithinTx(context.Background(), func(context.Context) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, failure.ErrStoreUnavailable)
	assert.False(t, called)
	assert.True(t, tx.Atomic())
}

func TestTransactor_NonAtomicRunsDirectly(t *testing.T) {
	tx := postgres.NewTransactor(nil, newConfig(false))

	called := false
	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		called = true

		_, inTx := postgres.TxFromContext(ctx)
		assert.False(t, inTx)

		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.False(t, tx.Atomic())
}
