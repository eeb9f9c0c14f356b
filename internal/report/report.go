// Package report turns joined customer/order/product/payment rows into the
// two output projections: pipe-delimited text lines and a 14-column CSV.
// Writing the result to disk is the caller's concern except for Save, which
// names the file with a write-time timestamp.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Row is one result row of the 5-way join, ordered by order date descending.
type Row struct {
	CustomerID    string
	CustomerName  string
	City          string
	State         string
	OrderID       string
	OrderDate     string
	Status        string
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     float64
	LineTotal     float64
	PaymentAmount float64
	PaymentMethod string
}

// TextHeader is the first line of the pipe-delimited projection.
const TextHeader = "Customer | Order | Product | Amount"

// CSVHeader matches the Row field order.
var CSVHeader = []string{
	"customer_id", "customer_name", "city", "state",
	"order_id", "order_date", "status",
	"product_id", "product_name", "quantity", "unit_price", "line_total",
	"payment_amount", "payment_method",
}

// FormatLine renders one row as a human-readable pipe-delimited line with
// currency fields to exactly two decimals.
func FormatLine(r Row) string {
	return fmt.Sprintf("%s | %s | %s (%s) [%s, %s] | %s (%s) x%d @ $%.2f -> $%.2f | Payment $%.2f via %s (%s)",
		r.OrderDate, r.OrderID,
		r.CustomerName, r.CustomerID, r.City, r.State,
		r.ProductName, r.ProductID, r.Quantity, r.UnitPrice, r.LineTotal,
		r.PaymentAmount, r.PaymentMethod, r.Status,
	)
}

// FormatLines renders the text projection, header line included.
func FormatLines(rows []Row) []string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, TextHeader)
	for _, r := range rows {
		lines = append(lines, FormatLine(r))
	}
	return lines
}

// CSVRecord returns the row's fields in CSVHeader order.
func (r Row) CSVRecord() []string {
	return []string{
		r.CustomerID, r.CustomerName, r.City, r.State,
		r.OrderID, r.OrderDate, r.Status,
		r.ProductID, r.ProductName,
		strconv.Itoa(r.Quantity),
		strconv.FormatFloat(r.UnitPrice, 'f', 2, 64),
		strconv.FormatFloat(r.LineTotal, 'f', 2, 64),
		strconv.FormatFloat(r.PaymentAmount, 'f', 2, 64),
		r.PaymentMethod,
	}
}

// ToCSV renders the CSV projection including the header row.
func ToCSV(rows []Row) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return "", err
	}
	for _, r := range rows {
		if err := w.Write(r.CSVRecord()); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Save writes the chosen projection into dir as report_<timestamp>.<ext> and
// returns the written path. format "csv" selects the CSV projection; anything
// else gets the text projection.
func Save(dir string, rows []Row, format string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	var contents, ext string
	if format == "csv" {
		out, err := ToCSV(rows)
		if err != nil {
			return "", fmt.Errorf("render csv report: %w", err)
		}
		contents, ext = out, "csv"
	} else {
		var buf bytes.Buffer
		for _, line := range FormatLines(rows) {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
		contents, ext = buf.String(), "txt"
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
