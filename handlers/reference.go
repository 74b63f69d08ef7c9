// ABOUTME: FAQ MCP tool handler
// ABOUTME: Implements the search_faq tool over the reference collection
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/poojareddy/voicedesk/faq"
	"github.com/poojareddy/voicedesk/journal"
	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

// escalationHint is spoken guidance when no entry matches; the conversation
// continues rather than failing.
const escalationHint = "No matching FAQ found. Offer to connect the caller with the sales team."

type ReferenceHandlers struct {
	entries   []models.ReferenceEntry
	journal   *journal.Journal
	sessionID string
}

// NewReferenceHandlers loads the reference collection once and serves all
// searches from memory; entries are immutable for the process lifetime.
func NewReferenceHandlers(st *store.Store, jnl *journal.Journal, sessionID string) (*ReferenceHandlers, error) {
	entries, err := st.LoadFAQ()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference collection: %w", err)
	}
	return &ReferenceHandlers{entries: entries, journal: jnl, sessionID: sessionID}, nil
}

type SearchFAQInput struct {
	Query string `json:"query" jsonschema:"Free-text question from the caller"`
}

type SearchFAQOutput struct {
	Found  bool   `json:"found"`
	ID     string `json:"id,omitempty"`
	Answer string `json:"answer"`
}

func (h *ReferenceHandlers) SearchFAQ(_ context.Context, _ *mcp.CallToolRequest, input SearchFAQInput) (*mcp.CallToolResult, SearchFAQOutput, error) {
	recordCall(h.journal, h.sessionID, AgentSDR, "search_faq", fmt.Sprintf("query=%q", input.Query))

	entry := faq.Search(h.entries, input.Query)
	if entry == nil {
		return nil, SearchFAQOutput{Found: false, Answer: escalationHint}, nil
	}
	return nil, SearchFAQOutput{Found: true, ID: entry.ID, Answer: entry.Answer}, nil
}
