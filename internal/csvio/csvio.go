// Package csvio persists generated datasets as CSV files and reads them back
// as typed records. Each entity gets one file with a header row matching its
// declared column order; empty datasets still get the header so a downstream
// load sees all five files.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/SamsaniMonish/ecomgen/internal/model"
)

// Filenames per entity, in load (parent-before-child) order.
var Files = []string{
	model.TableCustomers + ".csv",
	model.TableProducts + ".csv",
	model.TableOrders + ".csv",
	model.TableOrderItems + ".csv",
	model.TablePayments + ".csv",
}

// WriteDataset writes all five entity CSVs into dir, creating it if needed.
// Returns the row count per file name.
func WriteDataset(dir string, ds *model.Dataset) (map[string]int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	counts := make(map[string]int, 5)
	write := func(name string, header []string, records [][]string) error {
		if err := writeFile(filepath.Join(dir, name), header, records); err != nil {
			return err
		}
		counts[name] = len(records)
		return nil
	}

	if err := write(model.TableCustomers+".csv", model.CustomerColumns, customerRecords(ds.Customers)); err != nil {
		return nil, err
	}
	if err := write(model.TableProducts+".csv", model.ProductColumns, productRecords(ds.Products)); err != nil {
		return nil, err
	}
	if err := write(model.TableOrders+".csv", model.OrderColumns, orderRecords(ds.Orders)); err != nil {
		return nil, err
	}
	if err := write(model.TableOrderItems+".csv", model.OrderItemColumns, orderItemRecords(ds.OrderItems)); err != nil {
		return nil, err
	}
	if err := write(model.TablePayments+".csv", model.PaymentColumns, paymentRecords(ds.Payments)); err != nil {
		return nil, err
	}
	return counts, nil
}

func customerRecords(cs []model.Customer) [][]string {
	out := make([][]string, len(cs))
	for i, c := range cs {
		out[i] = c.Record()
	}
	return out
}

func productRecords(ps []model.Product) [][]string {
	out := make([][]string, len(ps))
	for i, p := range ps {
		out[i] = p.Record()
	}
	return out
}

func orderRecords(os []model.Order) [][]string {
	out := make([][]string, len(os))
	for i, o := range os {
		out[i] = o.Record()
	}
	return out
}

func orderItemRecords(is []model.OrderItem) [][]string {
	out := make([][]string, len(is))
	for i, it := range is {
		out[i] = it.Record()
	}
	return out
}

func paymentRecords(ps []model.Payment) [][]string {
	out := make([][]string, len(ps))
	for i, p := range ps {
		out[i] = p.Record()
	}
	return out
}

func writeFile(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write rows of %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// ReadDataset reads all five entity CSVs from dir back into typed records.
// A missing file or a header that does not match the declared columns is an
// input validation error.
func ReadDataset(dir string) (*model.Dataset, error) {
	ds := &model.Dataset{}

	rows, err := readFile(filepath.Join(dir, model.TableCustomers+".csv"), model.CustomerColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		ds.Customers = append(ds.Customers, model.Customer{
			CustomerID: r[0], FirstName: r[1], LastName: r[2], Email: r[3],
			City: r[4], State: r[5], SignupDate: r[6], LoyaltyTier: r[7],
		})
	}

	rows, err = readFile(filepath.Join(dir, model.TableProducts+".csv"), model.ProductColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		price, err := parseFloat(r[3], "price", r[0])
		if err != nil {
			return nil, err
		}
		inv, err := parseInt(r[4], "inventory_count", r[0])
		if err != nil {
			return nil, err
		}
		ds.Products = append(ds.Products, model.Product{
			ProductID: r[0], Name: r[1], Category: r[2], Price: price, InventoryCount: inv,
		})
	}

	rows, err = readFile(filepath.Join(dir, model.TableOrders+".csv"), model.OrderColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		total, err := parseFloat(r[5], "total_amount", r[0])
		if err != nil {
			return nil, err
		}
		ds.Orders = append(ds.Orders, model.Order{
			OrderID: r[0], CustomerID: r[1], OrderDate: r[2], Status: r[3],
			ShippingMethod: r[4], TotalAmount: total,
		})
	}

	rows, err = readFile(filepath.Join(dir, model.TableOrderItems+".csv"), model.OrderItemColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		qty, err := parseInt(r[3], "quantity", r[0])
		if err != nil {
			return nil, err
		}
		unit, err := parseFloat(r[4], "unit_price", r[0])
		if err != nil {
			return nil, err
		}
		line, err := parseFloat(r[5], "line_total", r[0])
		if err != nil {
			return nil, err
		}
		ds.OrderItems = append(ds.OrderItems, model.OrderItem{
			OrderItemID: r[0], OrderID: r[1], ProductID: r[2],
			Quantity: qty, UnitPrice: unit, LineTotal: line,
		})
	}

	rows, err = readFile(filepath.Join(dir, model.TablePayments+".csv"), model.PaymentColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		amount, err := parseFloat(r[3], "amount", r[0])
		if err != nil {
			return nil, err
		}
		ds.Payments = append(ds.Payments, model.Payment{
			PaymentID: r[0], OrderID: r[1], PaymentDate: r[2], Amount: amount,
			Method: r[4], Status: r[5], TransactionID: r[6],
		})
	}

	return ds, nil
}

func readFile(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.Validationf("dataset file %s is missing; run generate first", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, model.Validationf("dataset file %s has no header row", path)
	}
	for i, col := range columns {
		if all[0][i] != col {
			return nil, model.Validationf("dataset file %s: header column %d is %q, want %q", path, i, all[0][i], col)
		}
	}
	return all[1:], nil
}

func parseFloat(s, field, key string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, model.Validationf("row %s: %s %q is not a number", key, field, s)
	}
	return v, nil
}

func parseInt(s, field, key string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, model.Validationf("row %s: %s %q is not an integer", key, field, s)
	}
	return v, nil
}
