package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

const readyTimeout = 2 * time.Second

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady probes every registered dependency and reports the ones that
// failed.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	names := make([]string, 0, len(h.ready))
	for name := range h.ready {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		if err := h.ready[name](ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", slog.String("dependency", name), slog.Any("error", err))
			checks[name] = "unavailable"
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	if !healthy {
		writeJSON(w, http.StatusServiceUnavailable, envelope{Error: &errorBody{
			Code:    "NOT_READY",
			Message: "dependencies unavailable",
			Details: checks,
		}})
		return
	}
	writeData(w, http.StatusOK, map[string]any{"status": "ready", "checks": checks})
}
