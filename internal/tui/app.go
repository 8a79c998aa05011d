// ABOUTME: Root Bubble Tea model for the taskwell terminal client
// ABOUTME: Switches between the login view and the task view

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/internal/client"
	"github.com/taskwell/taskwell/internal/session"
)

// view identifies which screen the app is showing.
type view int

const (
	viewLogin view = iota
	viewTasks
)

// authResultMsg reports a completed login or register attempt.
type authResultMsg struct {
	ok bool
}

// App is the root model. It owns the session provider and routes messages
// to whichever view is active.
type App struct {
	provider *session.Provider
	client   *client.Client

	view  view
	login loginModel
	tasks tasksModel

	width  int
	height int
}

// NewApp creates the root model over a session provider and API client.
func NewApp(provider *session.Provider, c *client.Client) App {
	return App{
		provider: provider,
		client:   c,
		view:     viewLogin,
		login:    newLoginModel(),
		tasks:    newTasksModel(c),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.login.init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case authResultMsg:
		if !msg.ok {
			a.login.err = a.provider.LoginError()
			a.login.busy = false
			return a, nil
		}
		return a.enterTaskView()

	case logoutMsg:
		a.provider.Logout()
		a.view = viewLogin
		a.login = newLoginModel()
		return a, a.login.init()
	}

	// No signed-in user means the task view has nothing to show; fall back
	// to the login view.
	if a.view == viewTasks && a.provider.User() == nil {
		a.view = viewLogin
		return a, nil
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.update(msg, a.provider)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	switch a.view {
	case viewTasks:
		return a.tasks.view()
	default:
		return a.login.view()
	}
}

// enterTaskView switches to the task view and kicks off the initial fetch
// for the signed-in user.
func (a App) enterTaskView() (tea.Model, tea.Cmd) {
	user := a.provider.User()
	if user == nil {
		a.view = viewLogin
		return a, nil
	}

	a.view = viewTasks
	a.tasks = newTasksModel(a.client)
	a.tasks.user = user.Email
	return a, a.tasks.loadCmd()
}

// loginCmd runs a login attempt off the UI loop.
func loginCmd(provider *session.Provider, email, password string) tea.Cmd {
	return func() tea.Msg {
		return authResultMsg{ok: provider.Login(context.Background(), email, password)}
	}
}

// registerCmd runs a register attempt off the UI loop.
func registerCmd(provider *session.Provider, email, password string) tea.Cmd {
	return func() tea.Msg {
		return authResultMsg{ok: provider.Register(context.Background(), email, password)}
	}
}
