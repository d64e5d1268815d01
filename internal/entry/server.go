package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RunServer handles incoming HTTP connections on the given address until the
// provided context is canceled, at which point the server is shut down
// gracefully, allowing in-flight requests a few seconds to complete
func RunServer(ctx context.Context, logger *slog.Logger, handler http.Handler, bindAddr string, port uint16) {
	addr := fmt.Sprintf("%s:%d", bindAddr, port)
	server := &http.Server{
		Addr:    addr,
		Handler: withRequestLogging(logger, handler),
	}

	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe()
	}()
	logger.Info("Listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down server cleanly", "error", err)
			return
		}
		logger.Info("Server stopped")
	case err := <-done:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
		}
	}
}
