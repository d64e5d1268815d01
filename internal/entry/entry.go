package entry

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Application owns the process-level concerns of a server binary: a
// structured logger tagged with the app name, and a root context that's
// canceled when the process receives SIGINT or SIGTERM
type Application struct {
	name   string
	logger *slog.Logger
	cancel context.CancelFunc
}

// NewApplication initializes an Application along with its root context:
// main should defer app.Stop() and pass the context down to anything that
// needs to shut down when the process is signaled
func NewApplication(name string) (*Application, context.Context) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("app", name)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return &Application{
		name:   name,
		logger: logger,
		cancel: cancel,
	}, ctx
}

func (a *Application) Log() *slog.Logger {
	return a.logger
}

func (a *Application) Stop() {
	a.cancel()
}

// Fail logs a fatal initialization error and aborts the process
func (a *Application) Fail(message string, err error) {
	a.logger.Error(message, "error", err)
	a.cancel()
	os.Exit(1)
}
