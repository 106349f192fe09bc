package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
)

// SignInModel asks for a user id and resolves it to an identity.
type SignInModel struct {
	CommonModel
	load IdentityLoader

	form    *huh.Form
	loading bool
	err     error
}

func NewSignInModel(load IdentityLoader) SignInModel {
	m := SignInModel{load: load}
	m.form = m.buildForm()

	return m
}

func (m SignInModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("user_id").
				Title("User ID").
				Description("Show the dashboard as this user").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("user id cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m SignInModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return SignedInMsg{Identity: msg.identity} }

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.loading {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.loading = true
	m.err = nil

	return m, m.signInCmd(strings.TrimSpace(m.form.GetString("user_id")))
}

func (m SignInModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading user...")
	}

	content := "EcoCycle Dashboard\n\n" + m.form.View()
	if m.err != nil {
		content += "\n" + activeStyle(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type signInResultMsg struct {
	identity account.Identity
	err      error
}

func (m SignInModel) signInCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		id, err := m.load(ctx, userID)
		return signInResultMsg{identity: id, err: err}
	}
}
