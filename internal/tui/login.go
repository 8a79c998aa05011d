// ABOUTME: Login view for the taskwell TUI
// ABOUTME: Email/password form with login and register actions

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/internal/session"
)

// loginModel is the state of the login form.
type loginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int // 0 = email, 1 = password
	err      string
	busy     bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Prompt = "> "
	email.Placeholder = "you@example.com"
	email.CharLimit = 100
	email.Focus()

	password := textinput.New()
	password.Prompt = "> "
	password.Placeholder = "password"
	password.CharLimit = 100
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{
		email:    email,
		password: password,
	}
}

func (m loginModel) init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) update(msg tea.Msg, provider *session.Provider) (loginModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, nil

		case "enter":
			email, password := m.values()
			if email == "" || password == "" {
				m.err = "Email and password required"
				return m, nil
			}
			m.busy = true
			return m, loginCmd(provider, email, password)

		case "ctrl+r":
			email, password := m.values()
			if email == "" || password == "" {
				m.err = "Email and password required"
				return m, nil
			}
			m.busy = true
			return m, registerCmd(provider, email, password)
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) values() (string, string) {
	return strings.TrimSpace(m.email.Value()), m.password.Value()
}

func (m loginModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Login"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(accentStyle.Render("Signing in..."))
		b.WriteString("\n")
	} else if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter login • ctrl+r register • tab switch field • ctrl+c quit"))
	b.WriteString("\n")

	return b.String()
}
