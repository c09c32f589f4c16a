package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"shoptrack/internal/bootstrap"
	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/errs"
	"shoptrack/internal/usecase/tracking"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replay a batch file of offline records into the store",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		path := cmd.Flags().Arg(0)
		raw, err := os.ReadFile(path)
		if err != nil {
			return errs.Wrapf(err, "read batch file %s", path)
		}

		var items []tracking.BatchItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return errs.Wrapf(err, "decode batch file %s", path)
		}

		if err := app.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		report, err := svc.SyncBatch(ctx, items)
		if err != nil {
			return errs.Wrap(err, "sync batch")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "batch %s: saved=%d skipped=%d\n",
			report.BatchID, report.Saved, report.Skipped); err != nil {
			return errs.Wrap(err, "write sync output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
