package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// APIServer serves route on port until ctx is cancelled or SIGINT/SIGTERM
// arrives, then drains in-flight requests. onShutdown hooks run when the
// server starts shutting down.
func APIServer(ctx context.Context, route *chi.Mux, port string, log *zap.Logger, onShutdown ...func()) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           route,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// media uploads and ticket downloads stay under this
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	for _, fn := range onShutdown {
		srv.RegisterOnShutdown(fn)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server running", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
