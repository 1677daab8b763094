package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"staffhub/internal/transport/http/api"
)

// Recoverer turns a handler panic into a 500 instead of tearing down the
// connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
