package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SamsaniMonish/ecomgen/internal/csvio"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: generate, load, report",
	RunE:  runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addGenerateFlags(runCmd)
	addReportFlags(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	_, counts, err := generateAndSave()
	if err != nil {
		return err
	}
	fmt.Println("Generated datasets:")
	for _, name := range csvio.Files {
		fmt.Printf("- %s: %d records -> %s\n",
			strings.TrimSuffix(name, ".csv"), counts[name], filepath.Join(cfg.DataDir, name))
	}

	loaded, err := loadFromCSV(cmd.Context(), false)
	if err != nil {
		return err
	}
	fmt.Printf("\nData loaded into %s (%d total rows)\n\n", storeTarget(), loaded.Total())

	fmt.Println("Sample multi-table report (top rows):")
	return emitReport(cmd.Context(), true)
}
