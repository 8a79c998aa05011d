// ABOUTME: Tests for task view state transitions and derivations
// ABOUTME: Covers the summary line, duplicate guard, and local list maintenance

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskwell/taskwell/internal/client"
)

func task(id, name string, finished bool) client.Task {
	return client.Task{ID: id, User: "a@x.com", Name: name, Finished: finished}
}

func TestSummaryText(t *testing.T) {
	tests := []struct {
		name  string
		tasks []client.Task
		want  string
	}{
		{
			name:  "zero tasks",
			tasks: nil,
			want:  "You have 0 tasks left to do",
		},
		{
			name:  "one unfinished",
			tasks: []client.Task{task("1", "a", false)},
			want:  "You have 1 unfinished task",
		},
		{
			name:  "two unfinished",
			tasks: []client.Task{task("1", "a", false), task("2", "b", false)},
			want:  "You have 2 tasks left to do",
		},
		{
			name:  "finished tasks do not count",
			tasks: []client.Task{task("1", "a", true), task("2", "b", false)},
			want:  "You have 1 unfinished task",
		},
		{
			name:  "all finished",
			tasks: []client.Task{task("1", "a", true), task("2", "b", true)},
			want:  "You have 0 tasks left to do",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summaryText(tt.tasks); got != tt.want {
				t.Errorf("summaryText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAddDuplicate_NoNetworkCall(t *testing.T) {
	m := newTasksModel(nil)
	m.user = "a@x.com"
	m.tasks = []client.Task{task("1", "buy milk", false)}
	m.adding = true
	m.input.SetValue("buy milk")

	updated, cmd := m.update(keyMsg("enter"))

	if cmd != nil {
		t.Error("duplicate add must not issue a network command")
	}
	if updated.alert != "Task already exists!" {
		t.Errorf("expected duplicate alert, got %q", updated.alert)
	}
	if len(updated.tasks) != 1 {
		t.Errorf("expected local list unchanged, got %d tasks", len(updated.tasks))
	}
}

func TestAddEmptyName_NoOp(t *testing.T) {
	m := newTasksModel(nil)
	m.adding = true
	m.input.SetValue("   ")

	updated, cmd := m.update(keyMsg("enter"))

	if cmd != nil {
		t.Error("empty add must not issue a network command")
	}
	if updated.alert != "" {
		t.Errorf("empty add is a silent no-op, got alert %q", updated.alert)
	}
}

func TestAddUniqueName_IssuesCommand(t *testing.T) {
	m := newTasksModel(client.New("http://localhost:0"))
	m.user = "a@x.com"
	m.tasks = []client.Task{task("1", "buy milk", false)}
	m.adding = true
	m.input.SetValue("walk dog")

	updated, cmd := m.update(keyMsg("enter"))

	if cmd == nil {
		t.Fatal("expected a network command for a unique name")
	}
	if updated.adding {
		t.Error("expected add mode to close")
	}
	if updated.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", updated.input.Value())
	}
}

func TestTaskAdded_AppendsServerTask(t *testing.T) {
	m := newTasksModel(nil)
	m.tasks = []client.Task{task("1", "existing", false)}

	created := task("server-assigned-id", "new task", false)
	updated, _ := m.update(taskAddedMsg{task: &created})

	if len(updated.tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(updated.tasks))
	}
	if updated.tasks[1].ID != "server-assigned-id" {
		t.Errorf("appended task must carry the server-assigned id, got %q", updated.tasks[1].ID)
	}
}

func TestTaskRemoved_FiltersByID(t *testing.T) {
	m := newTasksModel(nil)
	m.tasks = []client.Task{task("1", "A", false), task("2", "B", false)}

	updated, _ := m.update(taskRemovedMsg{id: "1"})
	if len(updated.tasks) != 1 || updated.tasks[0].ID != "2" {
		t.Fatalf("expected only task 2 to remain, got %+v", updated.tasks)
	}

	// A second removal of the same id must leave the list untouched.
	updated, _ = updated.update(taskRemovedMsg{id: "1"})
	if len(updated.tasks) != 1 || updated.tasks[0].ID != "2" {
		t.Errorf("repeated removal corrupted the list: %+v", updated.tasks)
	}
}

func TestTaskRemoved_ErrorLeavesStateUnchanged(t *testing.T) {
	m := newTasksModel(nil)
	m.tasks = []client.Task{task("1", "A", false)}

	updated, _ := m.update(taskRemovedMsg{id: "1", err: errors.New("boom")})
	if len(updated.tasks) != 1 {
		t.Error("failed delete must leave local state unchanged")
	}
	if updated.alert == "" {
		t.Error("expected alert for failed delete")
	}
}

func TestTaskToggled_ReplacesInPlace(t *testing.T) {
	m := newTasksModel(nil)
	m.tasks = []client.Task{task("1", "A", false), task("2", "B", false)}

	flipped := task("1", "A", true)
	updated, _ := m.update(taskToggledMsg{task: &flipped})

	if !updated.tasks[0].Finished {
		t.Error("expected task 1 to be finished")
	}
	if updated.tasks[1].Finished {
		t.Error("task 2 must be untouched")
	}
}

func TestTasksLoaded_ReplacesList(t *testing.T) {
	m := newTasksModel(nil)
	m.tasks = []client.Task{task("stale", "old", false)}

	fresh := []client.Task{task("1", "new", false), task("2", "newer", true)}
	updated, _ := m.update(tasksLoadedMsg{tasks: fresh})

	if len(updated.tasks) != 2 || updated.tasks[0].ID != "1" {
		t.Errorf("expected fetched tasks to replace local state, got %+v", updated.tasks)
	}
}

func TestView_ShowsSummaryAndTasks(t *testing.T) {
	m := newTasksModel(nil)
	m.user = "a@x.com"
	m.tasks = []client.Task{task("1", "buy milk", false)}

	out := m.view()
	if !strings.Contains(out, "You have 1 unfinished task") {
		t.Error("view must contain the summary line")
	}
	if !strings.Contains(out, "buy milk") {
		t.Error("view must list the task name")
	}
}
