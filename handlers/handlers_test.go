// ABOUTME: Shared test setup for handler tests
// ABOUTME: Builds stores and journals in temp directories
package handlers

import (
	"path/filepath"
	"testing"

	"github.com/poojareddy/voicedesk/journal"
	"github.com/poojareddy/voicedesk/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	return st
}

func setupTestJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("journal.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}
