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

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Reconcile the schema and report what changed",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		report, err := svc.Repair(ctx)
		if err != nil {
			logging.Error(ctx, "schema repair failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "repair schema")
		}

		out := cmd.OutOrStdout()
		if report.Empty() {
			if _, err := fmt.Fprintln(out, "schema already current"); err != nil {
				return errs.Wrap(err, "write repair output")
			}
			return nil
		}

		for _, change := range report.Changed() {
			if _, err := fmt.Fprintln(out, change); err != nil {
				return errs.Wrap(err, "write repair output")
			}
		}
		for _, failure := range report.Failures {
			if _, err := fmt.Fprintf(out, "failed:%s (%s)\n", failure.Table, failure.Err); err != nil {
				return errs.Wrap(err, "write repair output")
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(repairCmd)
}
