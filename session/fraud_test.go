// ABOUTME: Tests for the fraud verification state machine
// ABOUTME: Covers case loading, bounded retries, exhaustion persistence, and resolution
package session

import (
	"errors"
	"testing"

	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

func caseByID(t *testing.T, st *store.Store, id string) models.CaseRecord {
	t.Helper()
	cases, err := st.LoadCases()
	if err != nil {
		t.Fatalf("LoadCases failed: %v", err)
	}
	for _, c := range cases {
		if c.CaseID == id {
			return c
		}
	}
	t.Fatalf("case %s not found", id)
	return models.CaseRecord{}
}

func TestLoadCasePartialNameCaseInsensitive(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)

	c, err := s.LoadCase("karthik")
	if err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}
	if c == nil {
		t.Fatal("expected a pending case for Karthik")
	}
	if c.CaseID != "CASE-003" {
		t.Errorf("expected CASE-003, got %s", c.CaseID)
	}
	if s.Attempts != 0 || s.Verified || s.CallFinished {
		t.Errorf("load must reset session state: %+v", s)
	}
}

func TestLoadCaseSkipsTerminalStatuses(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)

	// CASE-002 (Rohan Mehta) is seeded as confirmed_fraud.
	c, err := s.LoadCase("Rohan Mehta")
	if err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}
	if c != nil {
		t.Errorf("terminal case must never be loaded, got %s", c.CaseID)
	}
	if s.Case != nil {
		t.Error("session must be unchanged after a miss")
	}
}

func TestLoadCaseUnknownName(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)

	c, err := s.LoadCase("Nobody Known")
	if err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}
	if c != nil {
		t.Errorf("expected no match, got %s", c.CaseID)
	}
}

func TestCheckAnswerSuccessResetsAttempts(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)
	if _, err := s.LoadCase("Karthik"); err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}

	outcome, err := s.CheckAnswer("mumbai")
	if err != nil {
		t.Fatalf("CheckAnswer failed: %v", err)
	}
	if outcome != CheckRetry {
		t.Errorf("expected retry, got %s", outcome)
	}
	if s.Attempts != 1 {
		t.Errorf("expected attempts=1, got %d", s.Attempts)
	}

	// Case-insensitive, trimmed comparison.
	outcome, err = s.CheckAnswer("  Chennai ")
	if err != nil {
		t.Fatalf("CheckAnswer failed: %v", err)
	}
	if outcome != CheckSuccess {
		t.Errorf("expected success, got %s", outcome)
	}
	if !s.Verified {
		t.Error("expected verified=true")
	}
	if s.Attempts != 0 {
		t.Errorf("success must reset attempts, got %d", s.Attempts)
	}
}

func TestCheckAnswerExhaustionOnSecondMiss(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)
	if _, err := s.LoadCase("Karthik"); err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}

	if outcome, _ := s.CheckAnswer("mumbai"); outcome != CheckRetry {
		t.Fatalf("expected retry on first miss, got %s", outcome)
	}

	outcome, err := s.CheckAnswer("delhi")
	if err != nil {
		t.Fatalf("CheckAnswer failed: %v", err)
	}
	if outcome != CheckExhausted {
		t.Errorf("second miss itself must report exhausted, got %s", outcome)
	}
	if !s.CallFinished {
		t.Error("expected call_finished=true")
	}

	stored := caseByID(t, st, "CASE-003")
	if stored.Status != models.StatusVerificationFailed {
		t.Errorf("expected verification_failed persisted, got %s", stored.Status)
	}
	if stored.OutcomeNote == "" {
		t.Error("expected a fixed failure note")
	}

	// A further check reports exhausted without another attempt or write.
	outcome, err = s.CheckAnswer("chennai")
	if err != nil {
		t.Fatalf("CheckAnswer failed: %v", err)
	}
	if outcome != CheckExhausted {
		t.Errorf("expected exhausted after close, got %s", outcome)
	}
}

func TestCheckAnswerWithoutCase(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)

	_, err := s.CheckAnswer("chennai")
	if !errors.Is(err, ErrNoActiveCase) {
		t.Errorf("expected ErrNoActiveCase, got %v", err)
	}
}

func TestResolveWritesThrough(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)
	if _, err := s.LoadCase("Karthik"); err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}
	if outcome, _ := s.CheckAnswer("Chennai"); outcome != CheckSuccess {
		t.Fatalf("expected success, got %s", outcome)
	}

	before := caseByID(t, st, "CASE-003")

	updated, err := s.Resolve(models.StatusConfirmedSafe, "user confirmed purchase")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if updated.Status != models.StatusConfirmedSafe {
		t.Errorf("expected confirmed_safe, got %s", updated.Status)
	}
	if !s.CallFinished {
		t.Error("expected call_finished=true after resolve")
	}

	after := caseByID(t, st, "CASE-003")
	if after.Status != models.StatusConfirmedSafe || after.OutcomeNote != "user confirmed purchase" {
		t.Errorf("resolution not persisted: %+v", after)
	}

	// Only status and note change.
	before.Status = after.Status
	before.OutcomeNote = after.OutcomeNote
	if before != after {
		t.Errorf("resolve touched fields beyond status/outcomeNote: %+v vs %+v", before, after)
	}
}

func TestResolveInvalidStatus(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)
	if _, err := s.LoadCase("Anita"); err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}

	if _, err := s.Resolve(models.StatusPendingReview, "re-open"); err == nil {
		t.Error("pending_review must be rejected as a final status")
	}
	if _, err := s.Resolve("escalated", "note"); err == nil {
		t.Error("unknown status must be rejected")
	}

	stored := caseByID(t, st, "CASE-001")
	if stored.Status != models.StatusPendingReview {
		t.Errorf("rejected resolve must not mutate the store, got %s", stored.Status)
	}
}

func TestResolveWithoutCase(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)

	_, err := s.Resolve(models.StatusConfirmedFraud, "note")
	if !errors.Is(err, ErrNoActiveCase) {
		t.Errorf("expected ErrNoActiveCase, got %v", err)
	}
}

func TestResolveAllowedAfterExhaustion(t *testing.T) {
	st := newTestStore(t)
	s := NewFraudSession(st)
	if _, err := s.LoadCase("Karthik"); err != nil {
		t.Fatalf("LoadCase failed: %v", err)
	}
	s.CheckAnswer("wrong one")
	s.CheckAnswer("wrong two")

	// The case is still bound, so a reviewer-driven resolution may follow.
	updated, err := s.Resolve(models.StatusConfirmedFraud, "caller could not verify; flagged")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if updated.Status != models.StatusConfirmedFraud {
		t.Errorf("expected confirmed_fraud, got %s", updated.Status)
	}
}
