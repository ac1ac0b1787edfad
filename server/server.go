// Package server wraps the query service in a small HTTP API. The engine
// never sees the wire: the handler pulls the question parameter, calls
// the service, and encodes the answer payload.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/service/query"
)

// Request timeout is owned here, not by the engine; per-question work is
// bounded and CPU-only, so cutting a request off is always safe.
const requestTimeout = 10 * time.Second

func New(addr string, svc query.IService, logger *zap.Logger) *http.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{svc: svc, logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/query", h.Query).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/", h.Health).Methods(http.MethodGet, http.MethodOptions)
	router.Use(requestID(logger), cors)

	return &http.Server{
		Addr:         addr,
		Handler:      http.TimeoutHandler(router, requestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:  requestTimeout,
		WriteTimeout: 2 * requestTimeout,
	}
}
