// ABOUTME: Tests for the tool-call journal
// ABOUTME: Covers schema init, inserts, and recency ordering
package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	require.NoError(t, j.Record("sess-1", "sdr", "search_faq", "query=pricing"))
	require.NoError(t, j.Record("sess-1", "sdr", "update_lead_field", "field=name"))
	require.NoError(t, j.Record("sess-2", "fraud", "load_case", "name=Karthik"))

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Most recent first; ULIDs sort by insertion time.
	assert.Equal(t, "load_case", entries[0].Tool)
	assert.Equal(t, "search_faq", entries[2].Tool)
	assert.Equal(t, "sess-2", entries[0].SessionID)
}

func TestRecentLimit(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record("sess-1", "sdr", "search_faq", ""))
	}

	entries, err := j.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecentDefaultLimit(t *testing.T) {
	j := openTestJournal(t)
	require.NoError(t, j.Record("sess-1", "fraud", "check_answer", "outcome=retry"))

	entries, err := j.Recent(0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
