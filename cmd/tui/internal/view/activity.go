package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
)

type ActivityModel struct {
	CommonModel
	svc ActivityService
	id  account.Identity

	items   []activity.Item
	table   table.Model
	loading bool
	err     error
}

func NewActivityModel(svc ActivityService, id account.Identity) ActivityModel {
	return ActivityModel{
		svc:     svc,
		id:      id,
		table:   newActivityTable(12),
		loading: true,
	}
}

func (m ActivityModel) Title() string     { return "Recent Activity" }
func (m ActivityModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m ActivityModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ActivityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadActivityMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.items = msg.items
		m.table.SetRows(activityRows(msg.items, time.Now()))

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ActivityModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading activity...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	body := boxed(m.table.View())
	if len(m.items) == 0 {
		body = lipgloss.NewStyle().Faint(true).Render("No recent activity.")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(m.Title()+" for "+activeStyle(m.id.Email)),
		body,
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadActivityMsg struct {
	items []activity.Item
	err   error
}

func (m ActivityModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.svc.Feed(ctx, m.id)
		return loadActivityMsg{items: items, err: err}
	}
}
