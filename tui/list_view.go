package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("VOICEDESK"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	s.WriteString(helpStyle.Render("tab: switch · ↑/↓: move · enter: detail · q: quit"))

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Leads", "Cases"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityLeads:
		return m.renderLeadsTable()
	case EntityCases:
		return m.renderCasesTable()
	}
	return ""
}

func (m Model) renderLeadsTable() string {
	leads, err := m.store.LoadLeads()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Organization", Width: 20},
		{Title: "Use Case", Width: 25},
		{Title: "Timeline", Width: 12},
	}

	var rows []table.Row
	for _, lead := range leads {
		rows = append(rows, table.Row{
			lead.Name,
			lead.Organization,
			lead.UseCase,
			lead.Timeline,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderCasesTable() string {
	cases, err := m.store.LoadCases()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Case", Width: 10},
		{Title: "Owner", Width: 18},
		{Title: "Amount", Width: 14},
		{Title: "Status", Width: 20},
	}

	var rows []table.Row
	for _, c := range cases {
		rows = append(rows, table.Row{
			c.CaseID,
			c.OwnerName,
			fmt.Sprintf("%.2f %s", c.Amount, c.Currency),
			c.Status,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}
