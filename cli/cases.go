// ABOUTME: Fraud case CLI commands
// ABOUTME: Listing, inspection, manual resolution, and store seeding
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/poojareddy/voicedesk/models"
	"github.com/poojareddy/voicedesk/store"
)

// ListCasesCommand prints the case collection, optionally filtered by status.
func ListCasesCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-cases", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status (pending_review, confirmed_safe, confirmed_fraud, verification_failed)")
	_ = fs.Parse(args)

	cases, err := st.LoadCases()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tOWNER\tINSTRUMENT\tAMOUNT\tCOUNTERPARTY\tSTATUS\tNOTE")
	for _, c := range cases {
		if *status != "" && c.Status != *status {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f %s\t%s\t%s\t%s\n",
			c.CaseID, c.OwnerName, c.MaskedInstrument, c.Amount, c.Currency,
			c.CounterpartyName, c.Status, c.OutcomeNote)
	}
	return w.Flush()
}

// ShowCaseCommand prints one case in detail. The challenge answer stays in
// the store; operators see the question only.
func ShowCaseCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("show-case requires a case ID")
	}
	id := args[0]

	cases, err := st.LoadCases()
	if err != nil {
		return err
	}

	for i := range cases {
		if cases[i].CaseID != id {
			continue
		}
		s := cases[i].Summary()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Case:\t%s\n", s.CaseID)
		fmt.Fprintf(w, "Owner:\t%s\n", s.OwnerName)
		fmt.Fprintf(w, "Instrument:\t%s\n", s.MaskedInstrument)
		fmt.Fprintf(w, "Amount:\t%.2f %s\n", s.Amount, s.Currency)
		fmt.Fprintf(w, "Counterparty:\t%s\n", s.CounterpartyName)
		fmt.Fprintf(w, "Location:\t%s\n", s.Location)
		fmt.Fprintf(w, "Timestamp:\t%s\n", s.Timestamp)
		fmt.Fprintf(w, "Category:\t%s\n", s.Category)
		fmt.Fprintf(w, "Channel:\t%s\n", s.Channel)
		fmt.Fprintf(w, "Challenge:\t%s\n", s.ChallengeQuestion)
		fmt.Fprintf(w, "Status:\t%s\n", s.Status)
		fmt.Fprintf(w, "Note:\t%s\n", s.OutcomeNote)
		return w.Flush()
	}

	return fmt.Errorf("case not found: %s", id)
}

// ResolveCaseCommand manually sets a terminal status on a case, for
// reviewers closing out calls after the fact.
func ResolveCaseCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("resolve-case", flag.ExitOnError)
	status := fs.String("status", "", "Final status (required): "+strings.Join(models.FinalStatuses(), ", "))
	note := fs.String("note", "", "Outcome note")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("resolve-case requires a case ID (flags must come before the ID)")
	}
	if !models.ValidFinalStatus(*status) {
		return fmt.Errorf("invalid final status %q (valid: %s)", *status, strings.Join(models.FinalStatuses(), ", "))
	}

	updated, err := st.UpsertCase(fs.Arg(0), *status, *note)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("case not found: %s", fs.Arg(0))
	}

	fmt.Printf("Case %s resolved as %s\n", updated.CaseID, updated.Status)
	return nil
}

// SeedCommand rewrites every collection with its built-in defaults.
func SeedCommand(st *store.Store, args []string) error {
	if err := st.Seed(); err != nil {
		return err
	}
	fmt.Printf("Store seeded with defaults at %s\n", st.Dir())
	return nil
}
