package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hosteldesk/portal/pkg/composables"
	"github.com/hosteldesk/portal/pkg/configuration"
)

// RequestParams exposes per-request metadata (IP, user agent, writer) to
// downstream handlers through the context.
func RequestParams() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				params := &composables.Params{
					IP:        getRealIP(r, conf),
					UserAgent: r.UserAgent(),
					RequestID: getRequestID(r, conf),
					Request:   r,
					Writer:    w,
				}
				next.ServeHTTP(w, r.WithContext(composables.WithParams(r.Context(), params)))
			},
		)
	}
}
