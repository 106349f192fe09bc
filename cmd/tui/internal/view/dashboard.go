package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
)

type DashboardModel struct {
	CommonModel
	svc DashboardService
	id  account.Identity

	metrics *dashboard.Metrics
	table   table.Model
	loading bool
	err     error
}

func NewDashboardModel(svc DashboardService, id account.Identity) DashboardModel {
	return DashboardModel{
		svc:     svc,
		id:      id,
		table:   newActivityTable(6),
		loading: true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.metrics = msg.metrics
		m.table.SetRows(activityRows(msg.metrics.RecentActivity, time.Now()))

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

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("%s  %s", activeStyle(m.id.Email), string(m.id.Role))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		metricsPanel(m.id.Role, m.metrics),
		"Recent activity",
		boxed(m.table.View()),
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func metricsPanel(role account.Role, mt *dashboard.Metrics) string {
	cards := []string{
		card("Points", FormatPoints(mt.Points)),
		card("Collections", FormatCount(mt.TotalCollections)),
		card("Orders", FormatCount(mt.TotalOrders)),
		card("Recycled", FormatWeight(mt.TotalWeightKg)),
	}

	switch role {
	case account.RoleBusiness:
		cards = append(cards, card("Spent", FormatMoney(mt.TotalSpent)))
	case account.RoleCollector:
		cards = append(cards,
			card("Listings", FormatCount(mt.TotalProducts)),
			card("Revenue", FormatMoney(mt.TotalRevenue)),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func card(label, value string) string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(panelColor).
		Render(lipgloss.NewStyle().Faint(true).Render(label) + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
}

type loadDashboardMsg struct {
	metrics *dashboard.Metrics
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		metrics, err := m.svc.Get(ctx, m.id)
		return loadDashboardMsg{metrics: metrics, err: err}
	}
}
