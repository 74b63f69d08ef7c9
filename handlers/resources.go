// ABOUTME: MCP resource handlers for read-only data views
// ABOUTME: Exposes faq, leads, cases, and the company profile via voicedesk:// URIs
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

type ResourceHandlers struct {
	store *store.Store
}

func NewResourceHandlers(st *store.Store) *ResourceHandlers {
	return &ResourceHandlers{store: st}
}

// ReadResource handles resource read requests for voicedesk:// URIs.
func (h *ResourceHandlers) ReadResource(_ context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "voicedesk://") {
		return nil, fmt.Errorf("invalid URI scheme: expected voicedesk://")
	}

	path := strings.TrimPrefix(uri, "voicedesk://")
	parts := strings.Split(path, "/")

	switch parts[0] {
	case "faq":
		entries, err := h.store.LoadFAQ()
		if err != nil {
			return nil, fmt.Errorf("failed to load FAQ: %w", err)
		}
		return jsonResource(uri, entries)

	case "leads":
		leads, err := h.store.LoadLeads()
		if err != nil {
			return nil, fmt.Errorf("failed to load leads: %w", err)
		}
		return jsonResource(uri, leads)

	case "cases":
		if len(parts) > 1 && parts[1] != "" {
			return h.readCase(uri, parts[1])
		}
		return h.readAllCases(uri)

	case "profile":
		return jsonResource(uri, store.DefaultProfile())

	default:
		return nil, fmt.Errorf("unknown resource: %s", parts[0])
	}
}

// readAllCases returns secret-free summaries of every case.
func (h *ResourceHandlers) readAllCases(uri string) (*mcp.ReadResourceResult, error) {
	cases, err := h.store.LoadCases()
	if err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}

	summaries := make([]models.CaseSummary, len(cases))
	for i := range cases {
		summaries[i] = cases[i].Summary()
	}
	return jsonResource(uri, summaries)
}

func (h *ResourceHandlers) readCase(uri, id string) (*mcp.ReadResourceResult, error) {
	cases, err := h.store.LoadCases()
	if err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}

	for i := range cases {
		if cases[i].CaseID == id {
			return jsonResource(uri, cases[i].Summary())
		}
	}
	return nil, fmt.Errorf("case not found: %s", id)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}

	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}
