// ABOUTME: MCP server subcommand
// ABOUTME: Registers voicedesk tools and resources and serves them on stdio
package cli

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/poojareddy/voicedesk/handlers"
	"github.com/poojareddy/voicedesk/journal"
	"github.com/poojareddy/voicedesk/store"
)

// MCPCommand starts the MCP server on stdio. One server process carries one
// conversation: the session state lives in the handlers and is discarded
// when the process exits.
func MCPCommand(st *store.Store, jnl *journal.Journal) error {
	log.Println("Starting voicedesk MCP server...")

	// One conversation per process; the id ties journal rows together.
	sessionID := uuid.NewString()

	refHandlers, err := handlers.NewReferenceHandlers(st, jnl, sessionID)
	if err != nil {
		return err
	}
	leadHandlers := handlers.NewLeadHandlers(st, jnl, sessionID)
	fraudHandlers := handlers.NewFraudHandlers(st, jnl, sessionID)
	resourceHandlers := handlers.NewResourceHandlers(st)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "voicedesk",
		Version: "0.1.0",
	}, nil)

	// SDR agent tools.
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_faq",
		Description: "Look up the best-matching FAQ answer for the caller's question",
	}, refHandlers.SearchFAQ)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_lead_field",
		Description: "Record one piece of lead information the caller shared (name, organization, contact, role, use_case, team_size, timeline)",
	}, leadHandlers.UpdateLeadField)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "finalize_lead",
		Description: "Mark the conversation ended and snapshot the captured lead for summary",
	}, leadHandlers.FinalizeLead)

	// Fraud verification agent tools.
	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_case",
		Description: "Find the caller's pending fraud review case by their claimed name",
	}, fraudHandlers.LoadCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_answer",
		Description: "Check the caller's answer to the identity challenge question (two attempts maximum)",
	}, fraudHandlers.CheckAnswer)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_case",
		Description: "Record the final outcome of the loaded fraud case (confirmed_safe, confirmed_fraud, or verification_failed)",
	}, fraudHandlers.ResolveCase)

	// Read-only data views.
	server.AddResource(&mcp.Resource{
		URI:         "voicedesk://faq",
		Name:        "faq",
		Description: "The reference FAQ collection",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	server.AddResource(&mcp.Resource{
		URI:         "voicedesk://leads",
		Name:        "leads",
		Description: "Captured lead snapshot history",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	server.AddResource(&mcp.Resource{
		URI:         "voicedesk://cases",
		Name:        "cases",
		Description: "Fraud review cases (challenge answers excluded)",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	server.AddResource(&mcp.Resource{
		URI:         "voicedesk://profile",
		Name:        "profile",
		Description: "Company profile facts the agent may quote",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "voicedesk://cases/{id}",
		Name:        "case",
		Description: "A single fraud review case by ID (challenge answer excluded)",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
