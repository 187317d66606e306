package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hosteldesk/portal/pkg/constants"
)

// Provide stores a static value in every request's context.
func Provide(key constants.ContextKey, value interface{}) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ctx := context.WithValue(r.Context(), key, value)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}
