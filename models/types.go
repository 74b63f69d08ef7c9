// ABOUTME: Data models for voicedesk entities
// ABOUTME: Defines ReferenceEntry, Lead, CaseRecord, and status/field enumerations
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ReferenceEntry is a static question/answer pair used for FAQ lookup.
// Entries are loaded once per process and never mutated.
type ReferenceEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Lead holds the structured data progressively collected about a contact
// during a conversation. All fields are optional and filled in as the
// caller volunteers them.
type Lead struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Contact      string `json:"contact"`
	Role         string `json:"role"`
	UseCase      string `json:"use_case"`
	TeamSize     string `json:"team_size"`
	Timeline     string `json:"timeline"`
}

// Lead field names accepted by update_lead_field.
const (
	FieldName         = "name"
	FieldOrganization = "organization"
	FieldContact      = "contact"
	FieldRole         = "role"
	FieldUseCase      = "use_case"
	FieldTeamSize     = "team_size"
	FieldTimeline     = "timeline"
)

// ErrInvalidField is returned when a lead update names a field outside the
// enumerated set. Unknown names never create new attributes.
var ErrInvalidField = errors.New("invalid lead field")

var leadFieldSetters = map[string]func(*Lead, string){
	FieldName:         func(l *Lead, v string) { l.Name = v },
	FieldOrganization: func(l *Lead, v string) { l.Organization = v },
	FieldContact:      func(l *Lead, v string) { l.Contact = v },
	FieldRole:         func(l *Lead, v string) { l.Role = v },
	FieldUseCase:      func(l *Lead, v string) { l.UseCase = v },
	FieldTeamSize:     func(l *Lead, v string) { l.TeamSize = v },
	FieldTimeline:     func(l *Lead, v string) { l.Timeline = v },
}

// LeadFields returns the updatable field names in a stable order.
func LeadFields() []string {
	return []string{
		FieldName, FieldOrganization, FieldContact, FieldRole,
		FieldUseCase, FieldTeamSize, FieldTimeline,
	}
}

// SetField sets the named field to the trimmed value. Field names outside
// the enumerated set fail with ErrInvalidField and leave the lead untouched.
func (l *Lead) SetField(field, value string) error {
	set, ok := leadFieldSetters[field]
	if !ok {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidField, field, strings.Join(LeadFields(), ", "))
	}
	set(l, strings.TrimSpace(value))
	return nil
}

// Case status lifecycle: pending_review is the only non-terminal status.
const (
	StatusPendingReview      = "pending_review"
	StatusVerificationFailed = "verification_failed"
	StatusConfirmedSafe      = "confirmed_safe"
	StatusConfirmedFraud     = "confirmed_fraud"
)

// FinalStatuses lists the terminal statuses resolve_case accepts.
func FinalStatuses() []string {
	return []string{StatusConfirmedSafe, StatusConfirmedFraud, StatusVerificationFailed}
}

// ValidFinalStatus reports whether s is a terminal case status.
func ValidFinalStatus(s string) bool {
	switch s {
	case StatusConfirmedSafe, StatusConfirmedFraud, StatusVerificationFailed:
		return true
	}
	return false
}

// CaseRecord is a persisted unit of suspicious-activity review. Status and
// OutcomeNote are the only fields this core ever rewrites; ChallengeAnswer
// is the shared secret and must never leave the verification check.
type CaseRecord struct {
	CaseID                 string  `json:"caseId"`
	OwnerName              string  `json:"ownerName"`
	SharedSecretIdentifier string  `json:"sharedSecretIdentifier"`
	MaskedInstrument       string  `json:"maskedInstrument"`
	Amount                 float64 `json:"amount"`
	Currency               string  `json:"currency"`
	CounterpartyName       string  `json:"counterpartyName"`
	Location               string  `json:"location"`
	Timestamp              string  `json:"timestamp"`
	Category               string  `json:"category"`
	Channel                string  `json:"channel"`
	ChallengeQuestion      string  `json:"challengeQuestion"`
	ChallengeAnswer        string  `json:"challengeAnswer"`
	Status                 string  `json:"status"`
	OutcomeNote            string  `json:"outcomeNote"`
}

// CaseSummary is the caller-facing view of a case. It carries everything the
// dialog manager may speak aloud, which excludes the challenge answer.
type CaseSummary struct {
	CaseID                 string  `json:"caseId"`
	OwnerName              string  `json:"ownerName"`
	SharedSecretIdentifier string  `json:"sharedSecretIdentifier"`
	MaskedInstrument       string  `json:"maskedInstrument"`
	Amount                 float64 `json:"amount"`
	Currency               string  `json:"currency"`
	CounterpartyName       string  `json:"counterpartyName"`
	Location               string  `json:"location"`
	Timestamp              string  `json:"timestamp"`
	Category               string  `json:"category"`
	Channel                string  `json:"channel"`
	ChallengeQuestion      string  `json:"challengeQuestion"`
	Status                 string  `json:"status"`
	OutcomeNote            string  `json:"outcomeNote"`
}

// Summary returns the secret-free view of the case.
func (c *CaseRecord) Summary() CaseSummary {
	return CaseSummary{
		CaseID:                 c.CaseID,
		OwnerName:              c.OwnerName,
		SharedSecretIdentifier: c.SharedSecretIdentifier,
		MaskedInstrument:       c.MaskedInstrument,
		Amount:                 c.Amount,
		Currency:               c.Currency,
		CounterpartyName:       c.CounterpartyName,
		Location:               c.Location,
		Timestamp:              c.Timestamp,
		Category:               c.Category,
		Channel:                c.Channel,
		ChallengeQuestion:      c.ChallengeQuestion,
		Status:                 c.Status,
		OutcomeNote:            c.OutcomeNote,
	}
}
