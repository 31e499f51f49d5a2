package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

const sampleExport = `id,date,account_code,account_name,debit,credit,narration,entity,document_id
je-001,2025-03-15,1100,Bank,45000.00,,Customer receipt,Acme Pvt Ltd,doc-9
je-002,2025-03-15,4100,Sales,,45000.00,Customer receipt,Acme Pvt Ltd,doc-9
`

func TestReadEntries(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "je-001", entries[0].ID)
	assert.Equal(t, "1100", entries[0].AccountCode)
	assert.Equal(t, "Bank", entries[0].AccountName)
	assert.True(t, entries[0].Debit.Equal(dec("45000.00")))
	assert.True(t, entries[0].Credit.IsZero())
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, "doc-9", entries[0].DocumentID)

	assert.True(t, entries[1].Credit.Equal(dec("45000.00")))
	assert.True(t, entries[1].Debit.IsZero())
}

func TestReadEntries_Empty(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadEntries_BadDate(t *testing.T) {
	bad := Header + "\nje-001,15/03/2025,1100,Bank,100.00,,,,\n"
	_, err := ReadEntries(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadEntries_BadAmount(t *testing.T) {
	bad := Header + "\nje-001,2025-03-15,1100,Bank,abc,,,,\n"
	_, err := ReadEntries(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debit")
}

func TestWriteThenRead(t *testing.T) {
	entries := []model.JournalEntry{
		{ID: "je-001", Date: entryDate(), AccountCode: "5200", AccountName: "Rent", Debit: dec("12000.00"), Narration: "Office rent", Entity: "Acme", DocumentID: "doc-1"},
		{ID: "je-002", Date: entryDate(), AccountCode: "1100", AccountName: "Bank", Credit: dec("12000.00"), Narration: "Office rent", Entity: "Acme", DocumentID: "doc-1"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entries[0].ID, got[0].ID)
	assert.True(t, entries[0].Debit.Equal(got[0].Debit))
	assert.Equal(t, entries[1].Narration, got[1].Narration)
}
