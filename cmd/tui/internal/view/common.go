package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
)

const dbTimeout = 5 * time.Second

type DashboardService interface {
	Get(ctx context.Context, id account.Identity) (*dashboard.Metrics, error)
}

type ActivityService interface {
	Feed(ctx context.Context, id account.Identity) ([]activity.Item, error)
}

type IdentityLoader func(ctx context.Context, userID string) (account.Identity, error)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// SignedInMsg is sent once the user id form resolves to an identity.
type SignedInMsg struct {
	Identity account.Identity
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

var (
	borderColor = lipgloss.Color("240")
	accentColor = lipgloss.Color("205")
	panelColor  = lipgloss.Color("63")
)

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(accentColor).Render(s)
}
