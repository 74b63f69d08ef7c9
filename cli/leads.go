// ABOUTME: Lead CLI commands
// ABOUTME: Human-friendly listing of captured lead snapshots
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/poojareddy/voicedesk/store"
)

// ListLeadsCommand prints the lead snapshot history, oldest first.
func ListLeadsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-leads", flag.ExitOnError)
	limit := fs.Int("limit", 50, "Max snapshots to show")
	_ = fs.Parse(args)

	leads, err := st.LoadLeads()
	if err != nil {
		return err
	}

	if len(leads) > *limit {
		leads = leads[len(leads)-*limit:]
	}

	if len(leads) == 0 {
		fmt.Println("No lead snapshots recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tORGANIZATION\tCONTACT\tROLE\tUSE CASE\tTEAM SIZE\tTIMELINE")
	for _, lead := range leads {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			lead.Name, lead.Organization, lead.Contact, lead.Role,
			lead.UseCase, lead.TeamSize, lead.Timeline)
	}
	return w.Flush()
}
