package postgres_test

import "barbershop/config"

func newConfig(atomic bool) *config.Config {
	cfg := &config.Config{}
	cfg.DB.Postgres.AtomicWrites = atomic

	return cfg
}
