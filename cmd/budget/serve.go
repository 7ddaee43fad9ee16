package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	httpAdapter "github.com/iho/budgetledger/internal/adapter/http"
	"github.com/iho/budgetledger/internal/adapter/http/handler"
	"github.com/iho/budgetledger/internal/adapter/http/middleware"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger over HTTP on a local address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.HTTPAddr = addr
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides HTTP_ADDR)")

	return cmd
}

func (a *app) router() http.Handler {
	var limiter *middleware.RateLimiter
	if a.cfg.HTTPRateLimit > 0 {
		limiter = middleware.NewRateLimiter(a.cfg.HTTPRateLimit, a.cfg.HTTPRateBurst).
			CountHits(a.metrics.RateLimitHits)
	}

	return httpAdapter.NewRouter(httpAdapter.RouterConfig{
		EntryHandler:  handler.NewEntryHandler(a.ledger),
		ReportHandler: handler.NewReportHandler(a.ledger),
		HealthHandler: handler.NewHealthHandler(a.store),
		Logger:        a.logger,
		Metrics:       a.metrics,
		Gatherer:      a.registry,
		RateLimiter:   limiter,
	})
}

func (a *app) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      a.router(),
		ReadTimeout:  a.cfg.HTTPReadTimeout,
		WriteTimeout: a.cfg.HTTPWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Str("store", a.cfg.StorePath).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	a.logger.Info().Msg("server stopped")

	return nil
}
