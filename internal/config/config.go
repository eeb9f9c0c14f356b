// Package config holds the pipeline configuration: dataset sizes, the random
// seed, output locations, and the store backend. It is built once at process
// start (defaults, then environment, then flags) and passed into each
// component explicitly.
package config

import (
	"os"
	"strconv"

	"github.com/SamsaniMonish/ecomgen/internal/model"
)

// Config is the full configuration for one pipeline run.
type Config struct {
	// Dataset sizes and seed for the generator.
	Customers int
	Products  int
	Orders    int
	Seed      int64

	// Report row limit and output format ("txt" or "csv").
	ReportLimit  int
	ReportFormat string

	// DataDir receives the entity CSVs; ReportsDir the saved reports.
	DataDir    string
	ReportsDir string

	Store StoreConfig
}

// StoreConfig selects and parameterizes the relational backend.
type StoreConfig struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver string

	// Path is the SQLite database file.
	Path string

	// PostgreSQL connection settings, used when Driver is "postgres".
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Default returns the documented defaults: 150 customers, 200 products,
// 300 orders, seed 42, report limit 20, SQLite store at ecom.db.
func Default() Config {
	return Config{
		Customers:    150,
		Products:     200,
		Orders:       300,
		Seed:         42,
		ReportLimit:  20,
		ReportFormat: "txt",
		DataDir:      "data",
		ReportsDir:   "reports",
		Store: StoreConfig{
			Driver:   "sqlite",
			Path:     "ecom.db",
			Port:     5432,
			Database: "ecom",
		},
	}
}

// ApplyEnv overlays environment settings onto the config. Flags set on the
// command line still win; cobra applies them after this runs.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ECOM_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("ECOM_REPORTS_DIR"); v != "" {
		c.ReportsDir = v
	}
	if v := os.Getenv("ECOM_DB_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("ECOM_STORE"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("ECOM_PG_HOST"); v != "" {
		c.Store.Host = v
	}
	if v := os.Getenv("ECOM_PG_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Store.Port = port
		}
	}
	if v := os.Getenv("ECOM_PG_USER"); v != "" {
		c.Store.User = v
	}
	if v := os.Getenv("ECOM_PG_PASSWORD"); v != "" {
		c.Store.Password = v
	} else if v := os.Getenv("PGPASSWORD"); v != "" {
		c.Store.Password = v
	}
	if v := os.Getenv("ECOM_PG_DATABASE"); v != "" {
		c.Store.Database = v
	}
}

// Validate rejects configurations no component accepts.
func (c Config) Validate() error {
	if c.Customers < 0 || c.Products < 0 || c.Orders < 0 {
		return model.Validationf("entity counts must be >= 0 (customers=%d products=%d orders=%d)",
			c.Customers, c.Products, c.Orders)
	}
	if c.ReportLimit < 0 {
		return model.Validationf("report limit must be >= 0, got %d", c.ReportLimit)
	}
	if c.ReportFormat != "txt" && c.ReportFormat != "csv" {
		return model.Validationf("report format must be txt or csv, got %q", c.ReportFormat)
	}
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return model.Validationf("sqlite store requires a database path")
		}
	case "postgres":
		if c.Store.Host == "" || c.Store.User == "" {
			return model.Validationf("postgres store requires host and user")
		}
	default:
		return model.Validationf("unknown store driver %q (use sqlite or postgres)", c.Store.Driver)
	}
	return nil
}
