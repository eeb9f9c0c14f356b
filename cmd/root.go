// Package cmd wires the pipeline stages to the ecomgen command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SamsaniMonish/ecomgen/internal/config"
	"github.com/SamsaniMonish/ecomgen/internal/store"
	"github.com/SamsaniMonish/ecomgen/internal/store/postgres"
	"github.com/SamsaniMonish/ecomgen/internal/store/sqlite"
)

var (
	cfg            = config.Default()
	logger         zerolog.Logger
	verbose        bool
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "ecomgen [command]",
	Short: "Synthetic e-commerce data pipeline: generate CSVs, load a relational store, report",
	Long: `Generates a mutually consistent synthetic e-commerce dataset (customers,
products, orders, order items, payments), persists it as CSV, loads it into a
relational store with a fixed five-table schema, and produces a denormalized
multi-table report.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env for store credentials and paths.
		_ = godotenv.Load()
		resolveEnvConfig(cmd)

		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Str("run_id", uuid.NewString()[:8]).
			Logger()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for entity CSV files (or ECOM_DATA_DIR env)")
	pf.StringVar(&cfg.ReportsDir, "reports-dir", cfg.ReportsDir, "Directory for saved reports (or ECOM_REPORTS_DIR env)")
	pf.StringVar(&cfg.Store.Driver, "store", cfg.Store.Driver, "Store backend: sqlite or postgres (or ECOM_STORE env)")
	pf.StringVar(&cfg.Store.Path, "db-path", cfg.Store.Path, "SQLite database file (or ECOM_DB_PATH env)")
	pf.StringVar(&cfg.Store.Host, "pg-host", cfg.Store.Host, "PostgreSQL host (or ECOM_PG_HOST env)")
	pf.IntVar(&cfg.Store.Port, "pg-port", cfg.Store.Port, "PostgreSQL port (or ECOM_PG_PORT env)")
	pf.StringVar(&cfg.Store.User, "pg-user", cfg.Store.User, "PostgreSQL username (or ECOM_PG_USER env)")
	pf.StringVar(&cfg.Store.Database, "pg-database", cfg.Store.Database, "PostgreSQL database name (or ECOM_PG_DATABASE env)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; fail if any required value is missing")
}

// resolveEnvConfig overlays environment settings onto flags the caller left
// untouched, so precedence is flags over env over defaults.
func resolveEnvConfig(cmd *cobra.Command) {
	env := config.Default()
	env.ApplyEnv()

	f := cmd.Flags()
	if !f.Changed("data-dir") {
		cfg.DataDir = env.DataDir
	}
	if !f.Changed("reports-dir") {
		cfg.ReportsDir = env.ReportsDir
	}
	if !f.Changed("store") {
		cfg.Store.Driver = env.Store.Driver
	}
	if !f.Changed("db-path") {
		cfg.Store.Path = env.Store.Path
	}
	if !f.Changed("pg-host") {
		cfg.Store.Host = env.Store.Host
	}
	if !f.Changed("pg-port") {
		cfg.Store.Port = env.Store.Port
	}
	if !f.Changed("pg-user") {
		cfg.Store.User = env.Store.User
	}
	if !f.Changed("pg-database") {
		cfg.Store.Database = env.Store.Database
	}
	cfg.Store.Password = env.Store.Password
}

// openStore opens the configured backend for one load or report cycle.
func openStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		if cfg.Store.Password == "" && !nonInteractive {
			cfg.Store.Password = promptPassword(fmt.Sprintf("Password for %s@%s: ", cfg.Store.User, cfg.Store.Host))
		}
		return postgres.Open(ctx, postgres.ConnConfig{
			Host:     cfg.Store.Host,
			Port:     cfg.Store.Port,
			User:     cfg.Store.User,
			Password: cfg.Store.Password,
			Database: cfg.Store.Database,
		})
	default:
		return sqlite.Open(cfg.Store.Path)
	}
}

// storeTarget names the load destination for user-facing messages.
func storeTarget() string {
	if cfg.Store.Driver == "postgres" {
		return fmt.Sprintf("%s:%d/%s", cfg.Store.Host, cfg.Store.Port, cfg.Store.Database)
	}
	return cfg.Store.Path
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(pw)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
