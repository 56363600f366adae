package request_id

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const Header = "X-Request-ID"

const maxIncomingLength = 128

type ctxKey struct{}

// Middleware reuses the caller's X-Request-ID when it looks sane and
// generates a new one otherwise. The id is echoed in the response and stored
// in the request context.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(Header))
			if id == "" || utf8.RuneCountInString(id) > maxIncomingLength {
				id = uuid.NewString()
			}

			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
