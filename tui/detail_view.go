package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("VOICEDESK"))
	s.WriteString("\n\n")

	switch m.entityType {
	case EntityLeads:
		s.WriteString(m.renderLeadDetail())
	case EntityCases:
		s.WriteString(m.renderCaseDetail())
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("esc: back · q: quit"))

	return s.String()
}

func (m Model) renderLeadDetail() string {
	leads, err := m.store.LoadLeads()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if m.selectedRow >= len(leads) {
		return "Snapshot not found."
	}
	lead := leads[m.selectedRow]

	var s strings.Builder
	writeField := func(label, value string) {
		s.WriteString(labelStyle.Render(label+":") + " " + value + "\n")
	}
	writeField("Name", lead.Name)
	writeField("Organization", lead.Organization)
	writeField("Contact", lead.Contact)
	writeField("Role", lead.Role)
	writeField("Use Case", lead.UseCase)
	writeField("Team Size", lead.TeamSize)
	writeField("Timeline", lead.Timeline)
	return s.String()
}

func (m Model) renderCaseDetail() string {
	cases, err := m.store.LoadCases()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if m.selectedRow >= len(cases) {
		return "Case not found."
	}
	// The challenge answer never reaches the screen.
	c := cases[m.selectedRow].Summary()

	var s strings.Builder
	writeField := func(label, value string) {
		s.WriteString(labelStyle.Render(label+":") + " " + value + "\n")
	}
	writeField("Case", c.CaseID)
	writeField("Owner", c.OwnerName)
	writeField("Instrument", c.MaskedInstrument)
	writeField("Amount", fmt.Sprintf("%.2f %s", c.Amount, c.Currency))
	writeField("Counterparty", c.CounterpartyName)
	writeField("Location", c.Location)
	writeField("Timestamp", c.Timestamp)
	writeField("Category", c.Category)
	writeField("Channel", c.Channel)
	writeField("Challenge", c.ChallengeQuestion)
	writeField("Status", c.Status)
	writeField("Note", c.OutcomeNote)
	return s.String()
}
