package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/users-resources/internal/auth"
)

type tokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// Auth attaches the identity carried by the bearer token to the request
// context. Requests without a token pass through anonymously; requests with
// an invalid token are rejected.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.Validate(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(id.Into(r.Context())))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
