// ABOUTME: Journal CLI command
// ABOUTME: Lists recent tool invocations recorded by the MCP server
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/poojareddy/voicedesk/journal"
)

// JournalCommand prints recent tool calls, newest first.
func JournalCommand(jnl *journal.Journal, args []string) error {
	fs := flag.NewFlagSet("journal", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Max entries to show")
	_ = fs.Parse(args)

	entries, err := jnl.Recent(*limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No tool calls recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tAGENT\tTOOL\tDETAIL\tSESSION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Agent, e.Tool, e.Detail, e.SessionID)
	}
	return w.Flush()
}
