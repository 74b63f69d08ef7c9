// ABOUTME: Tests for case CLI commands
// ABOUTME: Covers manual resolution and reseeding
package cli

import (
	"testing"

	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	return st
}

func TestResolveCaseCommand(t *testing.T) {
	st := newTestStore(t)

	err := ResolveCaseCommand(st, []string{"--status", "confirmed_fraud", "--note", "reviewed offline", "CASE-001"})
	if err != nil {
		t.Fatalf("ResolveCaseCommand failed: %v", err)
	}

	cases, err := st.LoadCases()
	if err != nil {
		t.Fatalf("LoadCases failed: %v", err)
	}
	for _, c := range cases {
		if c.CaseID == "CASE-001" {
			if c.Status != models.StatusConfirmedFraud {
				t.Errorf("expected confirmed_fraud, got %s", c.Status)
			}
			if c.OutcomeNote != "reviewed offline" {
				t.Errorf("expected note persisted, got %q", c.OutcomeNote)
			}
		}
	}
}

func TestResolveCaseCommandRejectsInvalidStatus(t *testing.T) {
	st := newTestStore(t)

	if err := ResolveCaseCommand(st, []string{"--status", "pending_review", "CASE-001"}); err == nil {
		t.Error("expected error for non-terminal status")
	}
	if err := ResolveCaseCommand(st, []string{"--status", "confirmed_safe"}); err == nil {
		t.Error("expected error for missing case ID")
	}
}

func TestResolveCaseCommandUnknownCase(t *testing.T) {
	st := newTestStore(t)

	if err := ResolveCaseCommand(st, []string{"--status", "confirmed_safe", "CASE-404"}); err == nil {
		t.Error("expected error for unknown case")
	}
}

func TestSeedCommandResetsCollections(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.UpsertCase("CASE-003", models.StatusConfirmedSafe, "done"); err != nil {
		t.Fatalf("UpsertCase failed: %v", err)
	}

	if err := SeedCommand(st, nil); err != nil {
		t.Fatalf("SeedCommand failed: %v", err)
	}

	cases, err := st.LoadCases()
	if err != nil {
		t.Fatalf("LoadCases failed: %v", err)
	}
	for _, c := range cases {
		if c.CaseID == "CASE-003" && c.Status != models.StatusPendingReview {
			t.Errorf("expected reseeded pending_review, got %s", c.Status)
		}
	}
}
