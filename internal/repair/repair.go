// Package repair is the administrative interface that replaces the old
// ad-hoc SQL scripts. Every operation is tenant-scoped, runs in a
// transaction, and reports rows affected so callers can audit it.
package repair

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/qrt-closure/qrtrecon/internal/auditlog"
	"github.com/qrt-closure/qrtrecon/internal/model"
)

// ErrNoTenant is returned when a Service is created without a tenant id.
var ErrNoTenant = errors.New("repair requires a tenant id")

// Open opens the platform's sqlite database with conservative settings.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening platform database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging platform database: %w", err)
	}
	return db, nil
}

// Service performs tenant-scoped repairs against the platform database.
type Service struct {
	db       *sql.DB
	tenantID string
	workDir  string // audit log location
}

// NewService creates a repair Service. workDir receives the audit log.
func NewService(db *sql.DB, tenantID, workDir string) (*Service, error) {
	if tenantID == "" {
		return nil, ErrNoTenant
	}
	return &Service{db: db, tenantID: tenantID, workDir: workDir}, nil
}

// DedupeJournalEntries deletes duplicate journal entries for the tenant,
// keeping the lowest rowid of each (document_id, account_code, debit,
// credit, date) group. Returns the number of deleted rows.
func (s *Service) DedupeJournalEntries(ctx context.Context) (int64, error) {
	const stmt = `
		DELETE FROM journal_entries
		WHERE tenant_id = ?
		  AND id NOT IN (
			SELECT MIN(id) FROM journal_entries
			WHERE tenant_id = ?
			GROUP BY document_id, account_code, debit, credit, date
		  )`

	deleted, err := s.exec(ctx, stmt, s.tenantID, s.tenantID)
	if err != nil {
		return 0, fmt.Errorf("deduplicating journal entries: %w", err)
	}

	s.audit("dedupe-journal-entries", "kept lowest id per duplicate group", deleted)
	return deleted, nil
}

// ReassignDocumentType sets a document's type, scoped to the tenant.
// Returns the number of updated rows (0 when the document is unknown or
// belongs to another tenant).
func (s *Service) ReassignDocumentType(ctx context.Context, documentID string, newType model.DocumentType) (int64, error) {
	if !newType.Valid() {
		return 0, fmt.Errorf("invalid document type %q", newType)
	}

	const stmt = `UPDATE documents SET document_type = ? WHERE id = ? AND tenant_id = ?`
	updated, err := s.exec(ctx, stmt, string(newType), documentID, s.tenantID)
	if err != nil {
		return 0, fmt.Errorf("reassigning document type: %w", err)
	}

	s.audit("reassign-document-type", fmt.Sprintf("document %s -> %s", documentID, newType), updated)
	return updated, nil
}

// RenameDocument sets a document's original_name, scoped to the tenant.
func (s *Service) RenameDocument(ctx context.Context, documentID, newName string) (int64, error) {
	const stmt = `UPDATE documents SET original_name = ? WHERE id = ? AND tenant_id = ?`
	updated, err := s.exec(ctx, stmt, newName, documentID, s.tenantID)
	if err != nil {
		return 0, fmt.Errorf("renaming document: %w", err)
	}

	s.audit("rename-document", fmt.Sprintf("document %s -> %q", documentID, newName), updated)
	return updated, nil
}

func (s *Service) exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return affected, nil
}

func (s *Service) audit(operation, details string, rows int64) {
	if s.workDir == "" {
		return
	}
	entry := auditlog.Entry{
		Timestamp:    time.Now().UTC(),
		RunID:        uuid.NewString(),
		Operation:    operation,
		TenantID:     s.tenantID,
		Details:      details,
		RowsAffected: rows,
	}
	// Audit failures must not fail the repair itself.
	_ = auditlog.Append(s.workDir, []auditlog.Entry{entry})
}
