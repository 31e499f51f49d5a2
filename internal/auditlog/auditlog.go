// Package auditlog records administrative repair runs to a CSV trail, so
// direct database edits are attributable after the fact.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp    time.Time
	RunID        string
	Operation    string
	TenantID     string
	Details      string
	RowsAffected int64
}

// Header is the CSV header for audit-log.csv.
const Header = "timestamp,run_id,operation,tenant_id,details,rows_affected"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/audit-log.csv"
	colTimestamp = 0
	colRunID     = 1
	colOperation = 2
	colTenantID  = 3
	colDetails   = 4
	colRows      = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colOperation] = e.Operation
	row[colTenantID] = e.TenantID
	row[colDetails] = e.Details
	row[colRows] = strconv.FormatInt(e.RowsAffected, 10)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	rows, err := strconv.ParseInt(record[colRows], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows_affected %q: %w", record[colRows], err)
	}

	return Entry{
		Timestamp:    ts,
		RunID:        record[colRunID],
		Operation:    record[colOperation],
		TenantID:     record[colTenantID],
		Details:      record[colDetails],
		RowsAffected: rows,
	}, nil
}

// Append appends entries to <workDir>/logs/audit-log.csv, creating the file
// with a header when needed.
func Append(workDir string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Join(workDir, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(workDir, logFile)
	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	for _, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing audit entry: %w", err)
		}
	}
	return cw.Error()
}

// Read reads all entries from <workDir>/logs/audit-log.csv. A missing log
// is empty.
func Read(workDir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(workDir, logFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	var entries []Entry
	for i, rec := range records {
		if i == 0 && strings.Join(rec, ",") == Header {
			continue
		}
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
