// ABOUTME: Per-conversation lead capture state
// ABOUTME: Applies field updates and finalizes the captured record
package session

import (
	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

// LeadSession owns the in-progress lead for one conversation. Every
// successful update writes a full snapshot through to the store, so the lead
// collection is an append-only history rather than a single current record.
type LeadSession struct {
	store             *store.Store
	Lead              models.Lead
	ConversationEnded bool
}

// NewLeadSession starts an empty lead for a new conversation.
func NewLeadSession(st *store.Store) *LeadSession {
	return &LeadSession{store: st}
}

// UpdateField sets one enumerated lead field and appends a snapshot. An
// unknown field name fails with models.ErrInvalidField and changes nothing;
// a store write failure aborts before the in-memory lead is touched.
func (s *LeadSession) UpdateField(field, value string) error {
	next := s.Lead
	if err := next.SetField(field, value); err != nil {
		return err
	}
	if err := s.store.AppendLead(next); err != nil {
		return err
	}
	s.Lead = next
	return nil
}

// Finalize marks the conversation ended and appends the final snapshot.
// It returns the captured lead so the dialog manager can produce a summary.
func (s *LeadSession) Finalize() (models.Lead, error) {
	if err := s.store.AppendLead(s.Lead); err != nil {
		return models.Lead{}, err
	}
	s.ConversationEnded = true
	return s.Lead, nil
}
