package mocks

import (
	"context"

	"barbershop/infras/otel"
)

type tracer struct{}

func (tracer) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (tracer) Shutdown(context.Context) error { return nil }

// NewOtel returns a tracer that records nothing.
func NewOtel() otel.Otel {
	return tracer{}
}
