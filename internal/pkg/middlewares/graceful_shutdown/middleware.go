package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware rejects new requests with 503 once the server is draining and
// the in-flight context has been cancelled.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				http.Error(w, "service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
