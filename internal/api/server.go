package api

import (
	"net/http"
	"time"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, handler *Handler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.GetDashboardPage)
	mux.HandleFunc("GET /api/v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /api/v1/rates", handler.GetRates)
	mux.HandleFunc("GET /healthz", handler.Health)

	return &http.Server{
		Addr:         ":" + port,
		Handler:      withRequestID(logRequests(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
