package extract

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/qrt-closure/qrtrecon/internal/logger"
)

// XLSXReader reads Excel workbooks via excelize. A sheet that cannot be
// read is skipped with a warning; it never fails the whole workbook.
type XLSXReader struct{}

// Extensions returns the handled file extensions.
func (x *XLSXReader) Extensions() []string { return []string{".xlsx", ".xls"} }

// Read returns raw cell strings for every readable sheet in the workbook.
func (x *XLSXReader) Read(path string) (map[string][][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string][][]string)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			logger.L.Warn("skipping unreadable sheet", "file", path, "sheet", name, "error", err)
			continue
		}
		sheets[name] = rows
	}

	if len(sheets) == 0 {
		return nil, fmt.Errorf("no readable sheets in %s", path)
	}
	return sheets, nil
}
