package auditlog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp:    time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		RunID:        uuid.NewString(),
		Operation:    "dedupe-journal-entries",
		TenantID:     "tenant-7",
		Details:      "kept lowest id per duplicate group",
		RowsAffected: 14,
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	first := sampleEntry()
	require.NoError(t, Append(dir, []Entry{first}))

	second := sampleEntry()
	second.Operation = "reassign-document-type"
	second.RowsAffected = 1
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, first.RunID, entries[0].RunID)
	assert.Equal(t, "dedupe-journal-entries", entries[0].Operation)
	assert.Equal(t, int64(14), entries[0].RowsAffected)
	assert.True(t, first.Timestamp.Equal(entries[0].Timestamp))

	assert.Equal(t, "reassign-document-type", entries[1].Operation)
	assert.Equal(t, int64(1), entries[1].RowsAffected)
}

func TestReadMissingLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMarshalRoundTrip(t *testing.T) {
	e := sampleEntry()
	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e.RunID, got.RunID)
	assert.Equal(t, e.Details, got.Details)
	assert.Equal(t, e.RowsAffected, got.RowsAffected)
}

func TestUnmarshalBadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
}
