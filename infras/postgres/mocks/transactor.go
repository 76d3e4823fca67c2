package mocks

import (
	"context"

	"barbershop/infras/postgres"
)

type transactorImpl struct {
	atomic bool
}

// WithinTx implements postgres.Transactor without opening a transaction.
func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Atomic implements postgres.Transactor.
func (t *transactorImpl) Atomic() bool {
	return t.atomic
}

func NewTransactor(atomic bool) postgres.Transactor {
	return &transactorImpl{atomic: atomic}
}
