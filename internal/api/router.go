package api

import (
	"customer-directory-service/internal/api/handlers"
	"customer-directory-service/internal/config"
	"customer-directory-service/internal/services"
	"net/http"

	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers only see the directory service).
func NewRouter(svc *services.DirectoryService, depot config.Depot, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	customerHandler := &handlers.CustomerHandler{Directory: svc, Log: log}
	markerHandler := &handlers.MarkerHandler{Directory: svc, Depot: depot, Log: log}
	healthHandler := &handlers.HealthHandler{Directory: svc, Log: log}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/customers", customerHandler.ByDay)
	mux.HandleFunc("/customers/{id}", customerHandler.Get)
	mux.HandleFunc("/search", customerHandler.Search)
	mux.HandleFunc("/stats", customerHandler.Stats)
	mux.HandleFunc("/markers", markerHandler.List)

	return requestIDMiddleware(loggingMiddleware(log, mux))
}
