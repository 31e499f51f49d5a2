package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1500", "1500", true},
		{"2,500.00", "2500.00", true},
		{"₹12,345.67", "12345.67", true},
		{"$1,000", "1000", true},
		{"(250.00)", "-250.00", true},
		{"-42.5", "-42.5", true},
		{"3000.75", "3000.75", true},
		{"abc", "", false},
		{"N/A", "", false},
		{"", "", false},
		{"   ", "", false},
		{"-", "", false},
		{"₹", "", false},
	}
	for _, c := range cases {
		got, ok := ParseAmount(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.True(t, got.Equal(dec(c.want)), "input %q: got %s want %s", c.in, got, c.want)
		}
	}
}

func writeWorkbook(t *testing.T, cells []any) string {
	t.Helper()
	f := excelize.NewFile()
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	path := filepath.Join(t.TempDir(), "register.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtractorFile_SignificanceAndCoercion(t *testing.T) {
	// Spec scenario: [500, 1500, "2,500.00", "abc", 3000.75] with threshold
	// 1000 keeps 1500, 2500.00 and 3000.75.
	path := writeWorkbook(t, []any{500, 1500, "2,500.00", "abc", 3000.75})

	ex := NewExtractor(DefaultRegistry(), dec("1000"))
	cells, err := ex.File(path)
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.True(t, Sum(cells).Equal(dec("7000.75")))
	for _, c := range cells {
		assert.Equal(t, "Sheet1", c.Sheet)
		assert.Equal(t, 2, c.Row)
	}
}

func TestExtractorFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.csv")
	content := "date,description,amount\n02/01/2025,transfer,45000\n03/01/2025,fee,120\n04/01/2025,N/A,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ex := NewExtractor(DefaultRegistry(), dec("1000"))
	cells, err := ex.File(path)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.True(t, cells[0].Value.Equal(dec("45000")))
}

func TestExtractorFile_CSVValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.csv")
	content := "description,amount\ntransfer,\"45,000.00\"\nfee,120\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ex := NewExtractor(DefaultRegistry(), dec("1000"))
	cells, err := ex.File(path)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.True(t, cells[0].Value.Equal(dec("45000.00")))
	assert.Equal(t, "bank.csv", cells[0].Sheet)
}

func TestExtractorFile_UnsupportedExtension(t *testing.T) {
	ex := NewExtractor(DefaultRegistry(), dec("1000"))
	_, err := ex.File("statement.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractorFile_MissingFile(t *testing.T) {
	ex := NewExtractor(DefaultRegistry(), dec("1000"))
	_, err := ex.File(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
}

func TestHeaders(t *testing.T) {
	sheets := map[string][][]string{
		"Sheet1": {
			{"", ""},
			{"Invoice No", "Customer", "Sales Amount"},
			{"1", "Acme", "1200"},
		},
	}
	h := Headers(sheets)
	assert.Equal(t, []string{"Invoice No", "Customer", "Sales Amount"}, h)
}
