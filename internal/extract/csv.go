package extract

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVReader reads a CSV file as a single ragged sheet named after the file.
type CSVReader struct{}

// Extensions returns the handled file extensions.
func (c *CSVReader) Extensions() []string { return []string{".csv"} }

// Read returns the file's rows under one sheet keyed by the base file name.
func (c *CSVReader) Read(path string) (map[string][][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // source documents have no fixed schema

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	return map[string][][]string{filepath.Base(path): rows}, nil
}
