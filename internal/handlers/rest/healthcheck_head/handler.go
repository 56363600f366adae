package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	dependencies   []Pinger
}

// New reports 503 once shutdown has started or when any dependency stops
// answering pings.
func New(isShuttingDown *atomic.Bool, dependencies ...Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		dependencies:   dependencies,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, dependency := range h.dependencies {
		if err := dependency.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
