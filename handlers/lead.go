// ABOUTME: Lead capture MCP tool handlers
// ABOUTME: Implements update_lead_field and finalize_lead
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/poojareddy/voicedesk/journal"
	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/session"
	"github.com/poojareddy/voicedesk/store"
)

type LeadHandlers struct {
	session   *session.LeadSession
	journal   *journal.Journal
	sessionID string
}

func NewLeadHandlers(st *store.Store, jnl *journal.Journal, sessionID string) *LeadHandlers {
	return &LeadHandlers{
		session:   session.NewLeadSession(st),
		journal:   jnl,
		sessionID: sessionID,
	}
}

type UpdateLeadFieldInput struct {
	Field string `json:"field" jsonschema:"Lead field to set: name, organization, contact, role, use_case, team_size, or timeline"`
	Value string `json:"value" jsonschema:"Value the caller provided"`
}

type UpdateLeadFieldOutput struct {
	Field   string      `json:"field"`
	Value   string      `json:"value"`
	Message string      `json:"message"`
	Lead    models.Lead `json:"lead"`
}

// UpdateLeadField sets one enumerated lead field. An unknown field name is a
// contract violation and surfaces as a tool error.
func (h *LeadHandlers) UpdateLeadField(_ context.Context, _ *mcp.CallToolRequest, input UpdateLeadFieldInput) (*mcp.CallToolResult, UpdateLeadFieldOutput, error) {
	recordCall(h.journal, h.sessionID, AgentSDR, "update_lead_field", fmt.Sprintf("field=%s", input.Field))

	if err := h.session.UpdateField(input.Field, input.Value); err != nil {
		return nil, UpdateLeadFieldOutput{}, err
	}

	return nil, UpdateLeadFieldOutput{
		Field:   input.Field,
		Value:   input.Value,
		Message: fmt.Sprintf("Lead field %q updated.", input.Field),
		Lead:    h.session.Lead,
	}, nil
}

type FinalizeLeadInput struct{}

type FinalizeLeadOutput struct {
	Message string      `json:"message"`
	Lead    models.Lead `json:"lead"`
}

// FinalizeLead marks the conversation ended and appends the final snapshot.
// Producing the spoken summary is the dialog manager's job.
func (h *LeadHandlers) FinalizeLead(_ context.Context, _ *mcp.CallToolRequest, _ FinalizeLeadInput) (*mcp.CallToolResult, FinalizeLeadOutput, error) {
	recordCall(h.journal, h.sessionID, AgentSDR, "finalize_lead", "")

	lead, err := h.session.Finalize()
	if err != nil {
		return nil, FinalizeLeadOutput{}, err
	}

	return nil, FinalizeLeadOutput{
		Message: "Lead captured. A summary can now be generated.",
		Lead:    lead,
	}, nil
}
