package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SamsaniMonish/ecomgen/internal/report"
)

var reportNoSave bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Produce the denormalized multi-table report",
	Long: `Joins customers, orders, order items, products, and payments, ordered by
order date descending, and prints the result. Unless --no-save is given the
report is also written to the reports directory, as pipe-delimited text or
as CSV.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addReportFlags(reportCmd)
	reportCmd.Flags().BoolVar(&reportNoSave, "no-save", false, "Print only; skip saving to file")
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cfg.ReportLimit, "limit", cfg.ReportLimit, "Number of rows to include")
	cmd.Flags().StringVar(&cfg.ReportFormat, "format", cfg.ReportFormat, "Report file format when saving: txt or csv")
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return emitReport(cmd.Context(), !reportNoSave)
}

// emitReport queries the join, prints the text projection, and optionally
// saves the configured projection to the reports directory. Shared by report
// and run.
func emitReport(ctx context.Context, save bool) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := st.Report(ctx, cfg.ReportLimit)
	if err != nil {
		return err
	}

	for _, line := range report.FormatLines(rows) {
		fmt.Println(line)
	}

	if save {
		path, err := report.Save(cfg.ReportsDir, rows, cfg.ReportFormat)
		if err != nil {
			return err
		}
		fmt.Printf("\nReport saved to %s\n", path)
		logger.Info().Int("rows", len(rows)).Str("path", path).Msg("report saved")
	}
	return nil
}
