package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"shoptrack/internal/bootstrap"
	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/errs"
	"shoptrack/internal/usecase/tracking"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo records when the store is empty",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		if err := app.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		inserted, err := svc.Seed(ctx)
		if err != nil {
			logging.Error(ctx, "seed failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "seed demo data")
		}

		msg := "store already has records, nothing seeded"
		if inserted {
			msg = "demo records seeded"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), msg); err != nil {
			return errs.Wrap(err, "write seed output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
