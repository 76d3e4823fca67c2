package handler

import (
	"net/http"
	"sync"

	"barbershop/config"
	"barbershop/di"
	"barbershop/shared/logger"
	transport "barbershop/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
