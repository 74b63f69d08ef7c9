// ABOUTME: Visualization CLI commands
// ABOUTME: Renders the case pipeline and lead funnel graphs
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/poojareddy/voicedesk/store"
	"github.com/poojareddy/voicedesk/viz"
)

// VizPipelineCommand renders the fraud case status pipeline.
func VizPipelineCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz pipeline", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	dot, err := viz.NewGraphGenerator(st).GeneratePipelineGraph()
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}
	fmt.Println(dot)
	return nil
}

// VizFunnelCommand renders the lead capture funnel.
func VizFunnelCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz funnel", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	dot, err := viz.NewGraphGenerator(st).GenerateFunnelGraph()
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}
	fmt.Println(dot)
	return nil
}
