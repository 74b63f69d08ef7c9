// ABOUTME: Lead capture funnel graph generation
// ABOUTME: Shows how many lead snapshots carry each enumerated field
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/poojareddy/voicedesk/models"
)

// GenerateFunnelGraph renders the lead capture funnel: one node per
// enumerated field, labeled with how many recorded snapshots have that field
// filled in, chained in capture order.
func (g *GraphGenerator) GenerateFunnelGraph() (string, error) {
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

	graph.SetLabel("Lead Capture Funnel")
	graph.SetRankDir(cgraph.TBRank)

	leads, err := g.store.LoadLeads()
	if err != nil {
		return "", fmt.Errorf("failed to load leads: %w", err)
	}

	counts := make(map[string]int)
	for _, lead := range leads {
		if lead.Name != "" {
			counts[models.FieldName]++
		}
		if lead.Organization != "" {
			counts[models.FieldOrganization]++
		}
		if lead.Contact != "" {
			counts[models.FieldContact]++
		}
		if lead.Role != "" {
			counts[models.FieldRole]++
		}
		if lead.UseCase != "" {
			counts[models.FieldUseCase]++
		}
		if lead.TeamSize != "" {
			counts[models.FieldTeamSize]++
		}
		if lead.Timeline != "" {
			counts[models.FieldTimeline]++
		}
	}

	var prev *cgraph.Node
	for _, field := range models.LeadFields() {
		node, err := graph.CreateNodeByName(field)
		if err != nil {
			return "", fmt.Errorf("failed to create field node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n(%d snapshots)", field, counts[field]))
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor("lightblue")

		if prev != nil {
			if _, err := graph.CreateEdgeByName("", prev, node); err != nil {
				return "", fmt.Errorf("failed to create funnel edge: %w", err)
			}
		}
		prev = node
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
