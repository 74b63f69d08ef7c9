// ABOUTME: Case pipeline graph generation
// ABOUTME: Renders the status lifecycle with live case counts via graphviz
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(st *store.Store) *GraphGenerator {
	return &GraphGenerator{store: st}
}

// GeneratePipelineGraph renders the case status lifecycle as a directed
// graph: pending_review fans out to the three terminal statuses, each node
// labeled with how many cases currently sit in that status.
func (g *GraphGenerator) GeneratePipelineGraph() (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() {
		if err := gv.Close(); err != nil {
			fmt.Printf("Error closing graphviz: %v\n", err)
		}
	}()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			fmt.Printf("Error closing graph: %v\n", err)
		}
	}()

	graph.SetLabel("Fraud Case Pipeline")
	graph.SetRankDir(cgraph.LRRank)

	cases, err := g.store.LoadCases()
	if err != nil {
		return "", fmt.Errorf("failed to load cases: %w", err)
	}

	counts := make(map[string]int)
	for _, c := range cases {
		counts[c.Status]++
	}

	statuses := []string{
		models.StatusPendingReview,
		models.StatusConfirmedSafe,
		models.StatusConfirmedFraud,
		models.StatusVerificationFailed,
	}
	fills := map[string]string{
		models.StatusPendingReview:      "lightyellow",
		models.StatusConfirmedSafe:      "lightgreen",
		models.StatusConfirmedFraud:     "lightcoral",
		models.StatusVerificationFailed: "lightgray",
	}

	nodes := make(map[string]*cgraph.Node)
	for _, status := range statuses {
		node, err := graph.CreateNodeByName(status)
		if err != nil {
			return "", fmt.Errorf("failed to create status node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n(%d cases)", status, counts[status]))
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor(fills[status])
		nodes[status] = node
	}

	for _, terminal := range models.FinalStatuses() {
		edge, err := graph.CreateEdgeByName("transition", nodes[models.StatusPendingReview], nodes[terminal])
		if err != nil {
			return "", fmt.Errorf("failed to create transition edge: %w", err)
		}
		if terminal == models.StatusVerificationFailed {
			edge.SetLabel("attempts exhausted / resolve")
		} else {
			edge.SetLabel("resolve")
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
