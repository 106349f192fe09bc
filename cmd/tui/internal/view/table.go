package view

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
)

func newActivityTable(height int) table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Activity", Width: 24},
		{Title: "Details", Width: 44},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func activityRows(items []activity.Item, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(items))

	for _, it := range items {
		title := it.Title
		if it.Synthetic {
			title += " (sample)"
		}

		rows = append(rows, table.Row{Ago(it.Timestamp, now), title, it.Description})
	}

	return rows
}

func boxed(s string) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(s)
}
