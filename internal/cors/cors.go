// Package cors applies the permissive-but-scoped CORS policy required by the
// frontend: exactly one allowed origin, with credentials, all methods, and
// any requested headers permitted for that origin. Requests from any other
// origin receive no CORS headers at all.
package cors

import (
	"net/http"

	"github.com/gorilla/mux"
)

func Middleware(allowedOrigin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			origin := req.Header.Get("Origin")
			if origin != "" && origin == allowedOrigin {
				h := res.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
				if req.Method == http.MethodOptions {
					h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
					// With credentials allowed, headers can't be wildcarded:
					// echo back whatever the preflight asks for
					if requested := req.Header.Get("Access-Control-Request-Headers"); requested != "" {
						h.Set("Access-Control-Allow-Headers", requested)
					}
					res.WriteHeader(http.StatusNoContent)
					return
				}
			}
			next.ServeHTTP(res, req)
		})
	}
}
