package middleware

import (
	"net/http"

	"github.com/rs/xid"
	"github.com/stablebook/stablebook/internal/ctxkeys"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns each request a short sortable id, exposed in the
// response header and attached to the context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = xid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		ctx := ctxkeys.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
