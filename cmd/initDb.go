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

var initDbCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create or repair the database schema",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))
		logging.Info(ctx, "start init-db")

		if err := app.InitSchema(ctx); err != nil {
			logging.Error(ctx, "initialize schema failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "initialize schema")
		}

		logging.Info(ctx, "init-db finished", slog.String("database_dsn", app.Config.Database.DSN))
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "database schema initialized: %s\n", app.Config.Database.DSN); err != nil {
			return errs.Wrap(err, "write init-db output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(initDbCmd)
}
