package handler

import (
	"context"
	"net/http"

	"github.com/Rrens/fitsmart/internal/api/response"
	"github.com/Rrens/fitsmart/internal/service"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including store connectivity.
// A nil pinger means the store is in process and always ready.
func ReadyCheck(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			if err := p.Ping(r.Context()); err != nil {
				response.Error(w, http.StatusServiceUnavailable, "store not ready")
				return
			}
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}

// ListLLMProviders returns the registered vision providers
func ListLLMProviders(analyzer *service.AnalyzerService, defaultProvider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{
			"providers":        analyzer.Providers(),
			"default_provider": defaultProvider,
		})
	}
}
