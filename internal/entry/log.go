package entry

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey int

const loggerContextKey contextKey = 0

// Log returns the request-scoped logger installed by RunServer's logging
// middleware, falling back to the process-wide default logger so that
// handlers under test can call it without any middleware in place
func Log(req *http.Request) *slog.Logger {
	if logger, ok := req.Context().Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// withRequestLogging wraps a handler so that every request carries a logger
// annotated with the request's method and path
func withRequestLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		requestLogger := logger.With("method", req.Method, "path", req.URL.Path)
		ctx := context.WithValue(req.Context(), loggerContextKey, requestLogger)
		next.ServeHTTP(res, req.WithContext(ctx))
	})
}
