// ABOUTME: Fraud verification MCP tool handlers
// ABOUTME: Implements load_case, check_answer, and resolve_case
package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/poojareddy/voicedesk/journal"
	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/session"
	"github.com/poojareddy/voicedesk/store"
)

type FraudHandlers struct {
	session   *session.FraudSession
	journal   *journal.Journal
	sessionID string
}

func NewFraudHandlers(st *store.Store, jnl *journal.Journal, sessionID string) *FraudHandlers {
	return &FraudHandlers{
		session:   session.NewFraudSession(st),
		journal:   jnl,
		sessionID: sessionID,
	}
}

type LoadCaseInput struct {
	Name string `json:"name" jsonschema:"The caller's claimed name, as heard on the call"`
}

type LoadCaseOutput struct {
	Found   bool                `json:"found"`
	Case    *models.CaseSummary `json:"case,omitempty"`
	Message string              `json:"message,omitempty"`
}

// LoadCase binds the caller's pending case to the session and returns its
// secret-free summary. A miss is an in-band result so the call can continue.
func (h *FraudHandlers) LoadCase(_ context.Context, _ *mcp.CallToolRequest, input LoadCaseInput) (*mcp.CallToolResult, LoadCaseOutput, error) {
	recordCall(h.journal, h.sessionID, AgentFraud, "load_case", fmt.Sprintf("name=%q", input.Name))

	c, err := h.session.LoadCase(input.Name)
	if err != nil {
		return nil, LoadCaseOutput{}, err
	}
	if c == nil {
		return nil, LoadCaseOutput{
			Found:   false,
			Message: "No pending review case found for that name.",
		}, nil
	}

	summary := c.Summary()
	return nil, LoadCaseOutput{Found: true, Case: &summary}, nil
}

type CheckAnswerInput struct {
	Answer string `json:"answer" jsonschema:"The caller's answer to the challenge question"`
}

type CheckAnswerOutput struct {
	Outcome           string `json:"outcome"`
	AttemptsRemaining int    `json:"attempts_remaining"`
	CallFinished      bool   `json:"call_finished"`
	Message           string `json:"message"`
}

// CheckAnswer evaluates the caller's challenge response. Outcomes: success,
// retry, exhausted, or no_active_case when nothing is loaded yet.
func (h *FraudHandlers) CheckAnswer(_ context.Context, _ *mcp.CallToolRequest, input CheckAnswerInput) (*mcp.CallToolResult, CheckAnswerOutput, error) {
	outcome, err := h.session.CheckAnswer(input.Answer)
	if errors.Is(err, session.ErrNoActiveCase) {
		recordCall(h.journal, h.sessionID, AgentFraud, "check_answer", "outcome=no_active_case")
		return nil, CheckAnswerOutput{
			Outcome: "no_active_case",
			Message: "No case is loaded. Ask for the caller's name and load their case first.",
		}, nil
	}
	if err != nil {
		return nil, CheckAnswerOutput{}, err
	}

	recordCall(h.journal, h.sessionID, AgentFraud, "check_answer", fmt.Sprintf("outcome=%s", outcome))

	out := CheckAnswerOutput{
		Outcome:           string(outcome),
		AttemptsRemaining: h.session.AttemptsRemaining(),
		CallFinished:      h.session.CallFinished,
	}
	switch outcome {
	case session.CheckSuccess:
		out.Message = "Identity verified. Proceed to confirm the transaction details."
	case session.CheckRetry:
		out.Message = fmt.Sprintf("That did not match. %d attempt(s) remaining.", out.AttemptsRemaining)
	case session.CheckExhausted:
		out.Message = "Verification failed. The case has been marked for manual review; end the call politely."
	}
	return nil, out, nil
}

type ResolveCaseInput struct {
	Status string `json:"status" jsonschema:"Final case status: confirmed_safe, confirmed_fraud, or verification_failed"`
	Note   string `json:"note,omitempty" jsonschema:"Short outcome note for the reviewer"`
}

type ResolveCaseOutput struct {
	Active  bool                `json:"active"`
	Case    *models.CaseSummary `json:"case,omitempty"`
	Message string              `json:"message,omitempty"`
}

// ResolveCase writes a terminal status for the session's bound case. Calling
// it with no case bound is an in-band miss; an invalid status is a tool error.
func (h *FraudHandlers) ResolveCase(_ context.Context, _ *mcp.CallToolRequest, input ResolveCaseInput) (*mcp.CallToolResult, ResolveCaseOutput, error) {
	recordCall(h.journal, h.sessionID, AgentFraud, "resolve_case", fmt.Sprintf("status=%s", input.Status))

	updated, err := h.session.Resolve(input.Status, input.Note)
	if errors.Is(err, session.ErrNoActiveCase) {
		return nil, ResolveCaseOutput{
			Active:  false,
			Message: "No case is bound to this conversation; nothing was updated.",
		}, nil
	}
	if err != nil {
		return nil, ResolveCaseOutput{}, err
	}

	summary := updated.Summary()
	return nil, ResolveCaseOutput{Active: true, Case: &summary}, nil
}
