package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ecocycle/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/app"
	"github.com/MrJamesThe3rd/ecocycle/internal/config"
)

type model struct {
	app      *app.App
	identity account.Identity

	currentView View

	signInView    view.SignInModel
	dashboardView view.DashboardModel
	activityView  view.ActivityModel
}

type View int

const (
	ViewSignIn    View = 0
	ViewMenu      View = 1
	ViewDashboard View = 2
	ViewActivity  View = 3
)

func initialModel(a *app.App) model {
	return model{
		app:         a,
		currentView: ViewSignIn,
		signInView:  view.NewSignInModel(a.Identity),
	}
}

func (m model) Init() tea.Cmd {
	return m.signInView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.app.Dashboard, m.identity)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewActivity
				m.activityView = view.NewActivityModel(m.app.Activity, m.identity)

				return m, m.activityView.Init()
			case "3":
				m.currentView = ViewSignIn
				m.signInView = view.NewSignInModel(m.app.Identity)

				return m, m.signInView.Init()
			}
		}
	case view.SignedInMsg:
		m.identity = msg.Identity
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSignIn:
		var newModel tea.Model
		newModel, cmd = m.signInView.Update(msg)
		m.signInView = newModel.(view.SignInModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewActivity:
		var newModel tea.Model
		newModel, cmd = m.activityView.Update(msg)
		m.activityView = newModel.(view.ActivityModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewSignIn:
		return m.signInView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("EcoCycle TUI - %s (%s)\n\n", m.identity.Email, m.identity.Role) +
				"1. Dashboard\n" +
				"2. Recent Activity\n" +
				"3. Switch User\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewActivity:
		return m.activityView.View()
	}

	return "Unknown View"
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The TUI owns the terminal; keep logs out of it.
	logger := app.NewLogger(os.Stderr, cfg.App.LogFormat, "error")

	a, err := app.Open(context.Background(), cfg, logger)
	if err != nil {
		slog.Error("failed to open app", "error", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(a))
	_, runErr := p.Run()

	if err := a.Close(context.Background()); err != nil {
		slog.Error("failed to close resources", "error", err)
	}

	if runErr != nil {
		slog.Error("failed to run TUI", "error", runErr)
		os.Exit(1)
	}
}
