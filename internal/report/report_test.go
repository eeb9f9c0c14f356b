package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() Row {
	return Row{
		CustomerID:    "CUST0007",
		CustomerName:  "Avery Smith",
		City:          "Austin",
		State:         "TX",
		OrderID:       "ORD00042",
		OrderDate:     "2024-06-01",
		Status:        "delivered",
		ProductID:     "PROD0003",
		ProductName:   "Trail Jacket 512",
		Quantity:      2,
		UnitPrice:     59.5,
		LineTotal:     119.0,
		PaymentAmount: 119.0,
		PaymentMethod: "paypal",
	}
}

func TestFormatLine(t *testing.T) {
	want := "2024-06-01 | ORD00042 | Avery Smith (CUST0007) [Austin, TX] | " +
		"Trail Jacket 512 (PROD0003) x2 @ $59.50 -> $119.00 | Payment $119.00 via paypal (delivered)"
	assert.Equal(t, want, FormatLine(sampleRow()))
}

func TestFormatLinesIncludesHeader(t *testing.T) {
	lines := FormatLines([]Row{sampleRow()})
	require.Len(t, lines, 2)
	assert.Equal(t, "Customer | Order | Product | Amount", lines[0])

	empty := FormatLines(nil)
	require.Len(t, empty, 1)
	assert.Equal(t, TextHeader, empty[0])
}

func TestCSVRecord(t *testing.T) {
	rec := sampleRow().CSVRecord()
	require.Len(t, rec, len(CSVHeader))
	assert.Equal(t, "2", rec[9])
	assert.Equal(t, "59.50", rec[10])
	assert.Equal(t, "119.00", rec[11])
	assert.Equal(t, "paypal", rec[13])
}

func TestToCSV(t *testing.T) {
	out, err := ToCSV([]Row{sampleRow()})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(CSVHeader, ","), lines[0])
	assert.Contains(t, lines[1], "CUST0007,Avery Smith,Austin,TX,ORD00042")
}

func TestSaveText(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := Save(dir, []Row{sampleRow()}, "txt")
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "report_"))
	assert.True(t, strings.HasSuffix(base, ".txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), TextHeader+"\n"))
	assert.Contains(t, string(data), "ORD00042")
}

func TestSaveCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, []Row{sampleRow()}, "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), strings.Join(CSVHeader, ",")+"\n"))
}
