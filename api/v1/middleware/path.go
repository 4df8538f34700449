package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// EscapedRoutePath makes chi route on the escaped request path, so URL
// parameters always arrive percent-encoded and decode the same way whether or
// not the path contained an encoded slash.
func EscapedRoutePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath == "" {
			rctx.RoutePath = r.URL.EscapedPath()
		}
		next.ServeHTTP(w, r)
	})
}
