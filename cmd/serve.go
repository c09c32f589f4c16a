package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shoptrack/internal/bootstrap"
	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/errs"
	transport "shoptrack/internal/transport/http"
	"shoptrack/internal/usecase/tracking"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		// Heal the schema before taking traffic.
		if err := app.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		seed, _ := cmd.Flags().GetBool("seed")
		if seed {
			inserted, err := svc.Seed(ctx)
			if err != nil {
				return errs.Wrap(err, "seed demo data")
			}
			if inserted {
				logging.Info(ctx, "demo data seeded")
			}
		}

		addr, _ := cmd.Flags().GetString("addr")
		addr = strings.TrimSpace(addr)
		if addr == "" {
			addr = app.Config.Server.Addr
		}

		server := &http.Server{
			Addr:              addr,
			Handler:           transport.NewRouter(svc),
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		}

		signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logging.Info(ctx, "http server started", slog.String("addr", addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
				return
			}
			serveErr <- nil
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				logging.Error(ctx, "http server failed", slog.Any("err", errs.Loggable(err)))
				return errs.Wrap(err, "serve http")
			}
			return nil
		case <-signalCtx.Done():
		}

		logging.Info(ctx, "shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errs.Wrap(err, "shutdown http server")
		}
		return <-serveErr
	}),
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().Bool("seed", false, "Insert demo records when the store is empty")
}
