package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID propagates the caller's request id, or assigns a new one, and
// echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
