package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
)

func (c *cli) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP on a local address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, c.cfg, c.service(ctx))
		},
	}

	cmd.Flags().StringVar(&c.cfg.ServeAddr, "addr", c.cfg.ServeAddr, "listen address")
	return cmd
}

func newRouter(ctx context.Context, cfg config.Config, svc *service.GeneratorService) http.Handler {
	genHandler := handler.NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Get("/api/v1/classes", genHandler.HandleClasses)
	})

	return r
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, cfg config.Config, svc *service.GeneratorService) error {
	srv := &http.Server{
		Addr:              cfg.ServeAddr,
		Handler:           newRouter(ctx, cfg, svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.ServeAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
