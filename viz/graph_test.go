// ABOUTME: Tests for graphviz pipeline and funnel rendering
// ABOUTME: Checks that generated DOT output names the expected nodes
package viz

import (
	"strings"
	"testing"

	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

func newTestGenerator(t *testing.T) (*GraphGenerator, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	return NewGraphGenerator(st), st
}

func TestGeneratePipelineGraph(t *testing.T) {
	g, _ := newTestGenerator(t)

	dot, err := g.GeneratePipelineGraph()
	if err != nil {
		t.Fatalf("GeneratePipelineGraph failed: %v", err)
	}

	for _, status := range []string{
		models.StatusPendingReview,
		models.StatusConfirmedSafe,
		models.StatusConfirmedFraud,
		models.StatusVerificationFailed,
	} {
		if !strings.Contains(dot, status) {
			t.Errorf("expected %s node in graph output", status)
		}
	}
}

func TestGenerateFunnelGraph(t *testing.T) {
	g, st := newTestGenerator(t)

	if err := st.AppendLead(models.Lead{Name: "Priya", Organization: "Chai Point"}); err != nil {
		t.Fatalf("AppendLead failed: %v", err)
	}

	dot, err := g.GenerateFunnelGraph()
	if err != nil {
		t.Fatalf("GenerateFunnelGraph failed: %v", err)
	}

	for _, field := range models.LeadFields() {
		if !strings.Contains(dot, field) {
			t.Errorf("expected %s node in funnel output", field)
		}
	}
}
