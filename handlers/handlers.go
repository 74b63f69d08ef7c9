// ABOUTME: Shared plumbing for MCP tool handlers
// ABOUTME: Best-effort journaling of tool invocations
package handlers

import (
	"log"

	"github.com/poojareddy/voicedesk/journal"
)

// Agent names stamped on journal rows.
const (
	AgentSDR   = "sdr"
	AgentFraud = "fraud"
)

// recordCall journals one tool invocation. Journaling is best-effort: a nil
// journal or a failed write never fails the tool call.
func recordCall(j *journal.Journal, sessionID, agent, tool, detail string) {
	if j == nil {
		return
	}
	if err := j.Record(sessionID, agent, tool, detail); err != nil {
		log.Printf("warning: journal write failed for %s: %v", tool, err)
	}
}
