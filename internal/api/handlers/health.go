package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

type HealthHandler struct {
	Directory interface {
		IsLoaded() bool
		LoadAttempts() int64
	}
	Log       zerolog.Logger
}

// Health provides a liveness check that also reports whether the directory
// is resident, without waiting for it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r, h.Log) {
		return
	}

	res := map[string]any{
		"status":        "ok",
		"loaded":        h.Directory.IsLoaded(),
		"load_attempts": h.Directory.LoadAttempts(),
	}
	writeJSON(w, r, h.Log, http.StatusOK, res)
}
