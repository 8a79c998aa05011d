// ABOUTME: Task view for the taskwell TUI
// ABOUTME: Renders the task list, summary line, and inline add with duplicate guard

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/internal/client"
)

// Messages produced by task view commands.
type (
	tasksLoadedMsg struct {
		tasks []client.Task
		err   error
	}
	taskAddedMsg struct {
		task *client.Task
		err  error
	}
	taskToggledMsg struct {
		task *client.Task
		err  error
	}
	taskRemovedMsg struct {
		id  string
		err error
	}
	logoutMsg struct{}
)

// tasksModel is the state of the task view.
type tasksModel struct {
	api  *client.Client
	user string

	tasks  []client.Task
	cursor int

	adding bool
	input  textinput.Model

	alert string
}

func newTasksModel(api *client.Client) tasksModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Type your task here"
	input.CharLimit = 200

	return tasksModel{
		api:   api,
		input: input,
	}
}

// loadCmd fetches the signed-in user's tasks.
func (m tasksModel) loadCmd() tea.Cmd {
	api, user := m.api, m.user
	return func() tea.Msg {
		tasks, err := api.ListTasks(context.Background(), user)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m tasksModel) addCmd(name string) tea.Cmd {
	api, user := m.api, m.user
	return func() tea.Msg {
		task, err := api.CreateTask(context.Background(), user, name)
		return taskAddedMsg{task: task, err: err}
	}
}

func (m tasksModel) toggleCmd(id string, finished bool) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		task, err := api.SetFinished(context.Background(), id, finished)
		return taskToggledMsg{task: task, err: err}
	}
}

func (m tasksModel) removeCmd(id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		err := api.DeleteTask(context.Background(), id)
		return taskRemovedMsg{id: id, err: err}
	}
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.err != nil {
			// A failed fetch shows an empty list; local state is otherwise
			// left alone and the alert explains what happened.
			m.alert = msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.alert = ""
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil

	case taskAddedMsg:
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		// The id comes from the server's parsed response body.
		m.tasks = append(m.tasks, *msg.task)
		return m, nil

	case taskToggledMsg:
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.tasks = replaceByID(m.tasks, *msg.task)
		return m, nil

	case taskRemovedMsg:
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.tasks = removeByID(m.tasks, msg.id)
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	return m.updateBrowsing(msg)
}

// updateAdding handles keys while the inline add input is focused.
func (m tasksModel) updateAdding(msg tea.Msg) (tasksModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			if containsName(m.tasks, name) {
				m.alert = "Task already exists!"
				return m, nil
			}
			m.adding = false
			m.alert = ""
			m.input.SetValue("")
			m.input.Blur()
			return m, m.addCmd(name)

		case "esc":
			m.adding = false
			m.alert = ""
			m.input.SetValue("")
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateBrowsing handles keys while the list has focus.
func (m tasksModel) updateBrowsing(msg tea.Msg) (tasksModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case "a":
		m.adding = true
		m.alert = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case " ", "x":
		if m.cursor < len(m.tasks) {
			task := m.tasks[m.cursor]
			return m, m.toggleCmd(task.ID, !task.Finished)
		}
		return m, nil

	case "d":
		if m.cursor < len(m.tasks) {
			return m, m.removeCmd(m.tasks[m.cursor].ID)
		}
		return m, nil

	case "r":
		return m, m.loadCmd()

	case "ctrl+l":
		return m, func() tea.Msg { return logoutMsg{} }
	}

	return m, nil
}

func (m tasksModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(summaryText(m.tasks)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.user))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, task := range m.tasks {
		box := mutedStyle.Render(boxUnchecked)
		name := task.Name
		if task.Finished {
			box = successStyle.Render(boxChecked)
			name = doneStyle.Render(name)
		}

		prefix := "  "
		if i == m.cursor && !m.adding {
			prefix = selectedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, box, name)
	}

	if m.adding {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.alert))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString(helpStyle.Render("enter add • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("a add • space toggle • d delete • r refresh • ctrl+l logout • q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// summaryText derives the unfinished-count message from local state.
func summaryText(tasks []client.Task) string {
	unfinished := 0
	for _, t := range tasks {
		if !t.Finished {
			unfinished++
		}
	}
	if unfinished == 1 {
		return "You have 1 unfinished task"
	}
	return fmt.Sprintf("You have %d tasks left to do", unfinished)
}

// containsName reports whether some task in the local list has this name.
func containsName(tasks []client.Task, name string) bool {
	for _, t := range tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}

// removeByID filters out the task with the given id. Unknown ids leave the
// list unchanged, so repeated removals are harmless.
func removeByID(tasks []client.Task, id string) []client.Task {
	out := make([]client.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// replaceByID swaps in the updated task, matching on id.
func replaceByID(tasks []client.Task, updated client.Task) []client.Task {
	out := make([]client.Task, len(tasks))
	copy(out, tasks)
	for i, t := range out {
		if t.ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}
