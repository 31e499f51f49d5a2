// Package extract pulls significant numeric cells out of tabular source
// documents (sales registers, purchase registers, bank statements, trial
// balances). Layout is unstructured: every cell is tried, non-numeric and
// sub-threshold values are skipped silently, unreadable sheets are logged
// and skipped.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Cell is one significant numeric value found in a document.
type Cell struct {
	Sheet string
	Row   int // 1-based
	Col   int // 1-based
	Raw   string
	Value decimal.Decimal
}

// Reader parses one tabular file format into raw string rows per sheet.
type Reader interface {
	// Read returns sheet name -> rows of raw cell strings. CSV files report
	// a single sheet named after the file.
	Read(path string) (map[string][][]string, error)
	Extensions() []string
}

// Registry holds readers keyed by lowercased file extension.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader for each of its extensions. Panics on duplicates.
func (r *Registry) Register(rd Reader) {
	for _, ext := range rd.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.readers[key]; ok {
			panic("duplicate reader extension: " + key)
		}
		r.readers[key] = rd
	}
}

// ForFile returns the reader for a path's extension, or nil.
func (r *Registry) ForFile(path string) Reader {
	return r.readers[strings.ToLower(filepath.Ext(path))]
}

// DefaultRegistry returns a registry with the built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&XLSXReader{})
	r.Register(&CSVReader{})
	return r
}

// Extractor filters raw cells down to significant numeric values.
type Extractor struct {
	registry  *Registry
	threshold decimal.Decimal
}

// NewExtractor creates an Extractor keeping values with absolute value
// >= threshold.
func NewExtractor(registry *Registry, threshold decimal.Decimal) *Extractor {
	return &Extractor{registry: registry, threshold: threshold}
}

// File extracts all significant numeric cells from one document.
func (e *Extractor) File(path string) ([]Cell, error) {
	rd := e.registry.ForFile(path)
	if rd == nil {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	sheets, err := rd.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cells []Cell
	for sheet, rows := range sheets {
		for ri, row := range rows {
			for ci, raw := range row {
				v, ok := ParseAmount(raw)
				if !ok || v.Abs().LessThan(e.threshold) {
					continue
				}
				cells = append(cells, Cell{
					Sheet: sheet,
					Row:   ri + 1,
					Col:   ci + 1,
					Raw:   raw,
					Value: v,
				})
			}
		}
	}
	return cells, nil
}

// Headers returns the first non-empty row of each sheet, for classification.
func Headers(sheets map[string][][]string) []string {
	var headers []string
	for _, rows := range sheets {
		for _, row := range rows {
			empty := true
			for _, c := range row {
				if strings.TrimSpace(c) != "" {
					empty = false
					break
				}
			}
			if empty {
				continue
			}
			headers = append(headers, row...)
			break
		}
	}
	return headers
}

// Sum totals the extracted values.
func Sum(cells []Cell) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cells {
		total = total.Add(c.Value)
	}
	return total
}
