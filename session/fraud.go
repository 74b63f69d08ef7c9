// ABOUTME: Per-conversation fraud verification state machine
// ABOUTME: Loads pending cases, checks challenge answers with bounded retries, resolves outcomes
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

// MaxAttempts bounds the challenge retries per case. Two tries tolerate one
// transcription slip before the case is escalated to a reviewable failure.
const MaxAttempts = 2

// failedNote is the fixed outcome note written when attempts run out.
const failedNote = "identity verification failed after maximum attempts"

// ErrNoActiveCase means the session has no case bound; the caller should
// load one before checking answers or resolving.
var ErrNoActiveCase = errors.New("no active case loaded for this session")

// CheckOutcome is the result of one challenge-answer evaluation.
type CheckOutcome string

const (
	CheckSuccess   CheckOutcome = "success"
	CheckRetry     CheckOutcome = "retry"
	CheckExhausted CheckOutcome = "exhausted"
)

// FraudSession owns one conversation's verification state. A case stays
// bound from LoadCase until the conversation ends; only the bound case can
// be resolved.
type FraudSession struct {
	store        *store.Store
	Case         *models.CaseRecord
	Attempts     int
	Verified     bool
	CallFinished bool
}

// NewFraudSession starts a session with no case bound.
func NewFraudSession(st *store.Store) *FraudSession {
	return &FraudSession{store: st}
}

// LoadCase binds the first pending case whose owner name matches the claimed
// name (case-insensitive; a partial name like "Karthik" matches
// "Karthik Iyer"). Returns nil when no pending case matches, leaving the
// session unchanged.
func (s *FraudSession) LoadCase(claimedName string) (*models.CaseRecord, error) {
	name := strings.ToLower(strings.TrimSpace(claimedName))
	if name == "" {
		return nil, nil
	}

	cases, err := s.store.LoadCases()
	if err != nil {
		return nil, err
	}

	for i := range cases {
		if cases[i].Status != models.StatusPendingReview {
			continue
		}
		if !strings.Contains(strings.ToLower(cases[i].OwnerName), name) {
			continue
		}
		bound := cases[i]
		s.Case = &bound
		s.Attempts = 0
		s.Verified = false
		s.CallFinished = false
		return s.Case, nil
	}

	return nil, nil
}

// CheckAnswer evaluates one challenge response against the bound case's
// stored secret. The comparison trims and lowercases both sides. The second
// consecutive miss persists verification_failed and finishes the call; no
// further attempt is needed to observe the terminal status.
func (s *FraudSession) CheckAnswer(answer string) (CheckOutcome, error) {
	if s.Case == nil {
		return "", ErrNoActiveCase
	}
	if s.Verified {
		return CheckSuccess, nil
	}
	if s.CallFinished {
		return CheckExhausted, nil
	}

	s.Attempts++
	given := strings.ToLower(strings.TrimSpace(answer))
	expected := strings.ToLower(strings.TrimSpace(s.Case.ChallengeAnswer))

	if given == expected {
		s.Verified = true
		s.Attempts = 0
		return CheckSuccess, nil
	}

	if s.Attempts >= MaxAttempts {
		updated, err := s.store.UpsertCase(s.Case.CaseID, models.StatusVerificationFailed, failedNote)
		if err != nil {
			return "", err
		}
		if updated != nil {
			s.Case = updated
		}
		s.CallFinished = true
		return CheckExhausted, nil
	}

	return CheckRetry, nil
}

// AttemptsRemaining reports how many challenge tries are left.
func (s *FraudSession) AttemptsRemaining() int {
	remaining := MaxAttempts - s.Attempts
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Resolve writes a terminal status and note through the store for the bound
// case, rebinding the session to the updated record and finishing the call.
// The status must be one of models.FinalStatuses.
func (s *FraudSession) Resolve(status, note string) (*models.CaseRecord, error) {
	if s.Case == nil {
		return nil, ErrNoActiveCase
	}
	if !models.ValidFinalStatus(status) {
		return nil, fmt.Errorf("invalid final status %q (valid: %s)", status, strings.Join(models.FinalStatuses(), ", "))
	}

	updated, err := s.store.UpsertCase(s.Case.CaseID, status, note)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("case %s is no longer present in the store", s.Case.CaseID)
	}

	s.Case = updated
	s.CallFinished = true
	return updated, nil
}
