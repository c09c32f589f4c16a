package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"shoptrack/internal/bootstrap"
	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/errs"
	"shoptrack/internal/usecase/tracking"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export workbook snapshots to xlsx files",
}

var exportSuppliesCmd = &cobra.Command{
	Use:   "supplies",
	Short: "Export the supply register",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		rawScope, _ := cmd.Flags().GetString("scope")
		scope, err := tracking.ParseExportScope(rawScope)
		if err != nil {
			return err
		}
		dateFrom, _ := cmd.Flags().GetString("from")
		dateTo, _ := cmd.Flags().GetString("to")

		f, err := svc.SupplyRegisterWorkbook(ctx, scope, dateFrom, dateTo)
		if err != nil {
			return errs.Wrap(err, "build supply workbook")
		}
		return saveWorkbook(cmd, f)
	}),
}

var exportSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Export search results for a key fragment",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		f, err := svc.SearchWorkbook(ctx, cmd.Flags().Arg(0))
		if err != nil {
			return errs.Wrap(err, "build search workbook")
		}
		return saveWorkbook(cmd, f)
	}),
}

var exportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Export the per-asset summary table",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *tracking.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		q, _ := cmd.Flags().GetString("q")
		f, err := svc.SummaryWorkbook(ctx, q)
		if err != nil {
			return errs.Wrap(err, "build summary workbook")
		}
		return saveWorkbook(cmd, f)
	}),
}

func saveWorkbook(cmd *cobra.Command, f *excelize.File) error {
	defer func() { _ = f.Close() }()

	out, _ := cmd.Flags().GetString("out")
	if err := f.SaveAs(out); err != nil {
		return errs.Wrapf(err, "save workbook %s", out)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "workbook written: %s\n", out); err != nil {
		return errs.Wrap(err, "write export output")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportSuppliesCmd)
	exportCmd.AddCommand(exportSearchCmd)
	exportCmd.AddCommand(exportSummaryCmd)

	exportSuppliesCmd.Flags().String("scope", "both", "engines, generators or both")
	exportSuppliesCmd.Flags().String("from", "", "Start date YYYY-MM-DD (inclusive)")
	exportSuppliesCmd.Flags().String("to", "", "End date YYYY-MM-DD (inclusive)")
	exportSuppliesCmd.Flags().String("out", "supplies.xlsx", "Output file path")

	exportSearchCmd.Flags().String("out", "search.xlsx", "Output file path")

	exportSummaryCmd.Flags().String("q", "", "Key fragment filter, empty for all")
	exportSummaryCmd.Flags().String("out", "summary.xlsx", "Output file path")
}
