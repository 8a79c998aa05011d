// ABOUTME: Tests for SQLite store implementation
// ABOUTME: Covers task CRUD, arrival ordering, user filtering, and account storage

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	return s
}

func TestNewSQLiteStore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	// Verify the database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "test.db")

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestCreateTask_AssignsID(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	task := &Task{User: "a@x.com", Name: "buy milk"}

	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.ID == "" {
		t.Error("expected CreateTask to assign an ID")
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected CreateTask to set CreatedAt")
	}
}

func TestListTasks_ArrivalOrder(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := s.CreateTask(ctx, &Task{User: "a@x.com", Name: name}); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, name := range names {
		if tasks[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, tasks[i].Name)
		}
	}
}

func TestListTasksByUser_FiltersExactly(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	if err := s.CreateTask(ctx, &Task{User: "a@x.com", Name: "mine"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := s.CreateTask(ctx, &Task{User: "b@x.com", Name: "theirs"}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	tasks, err := s.ListTasksByUser(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("ListTasksByUser failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Name != "mine" {
		t.Errorf("expected task 'mine', got %q", tasks[0].Name)
	}

	// Unknown user yields an empty, non-nil slice
	none, err := s.ListTasksByUser(ctx, "nobody@x.com")
	if err != nil {
		t.Fatalf("ListTasksByUser failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty slice for unknown user, got %v", none)
	}
}

func TestSetTaskFinished(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	task := &Task{User: "a@x.com", Name: "buy milk"}
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	updated, err := s.SetTaskFinished(ctx, task.ID, true)
	if err != nil {
		t.Fatalf("SetTaskFinished failed: %v", err)
	}
	if !updated.Finished {
		t.Error("expected task to be finished")
	}
	if updated.Name != "buy milk" || updated.User != "a@x.com" {
		t.Errorf("expected other fields unchanged, got %+v", updated)
	}
}

func TestSetTaskFinished_NotFound(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	_, err := s.SetTaskFinished(context.Background(), "no-such-id", true)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	a := &Task{User: "a@x.com", Name: "A"}
	b := &Task{User: "a@x.com", Name: "B"}
	if err := s.CreateTask(ctx, a); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := s.CreateTask(ctx, b); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := s.DeleteTask(ctx, a.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Errorf("expected only task B to remain, got %d tasks", len(tasks))
	}
}

func TestDeleteTask_Idempotent(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	a := &Task{User: "a@x.com", Name: "A"}
	b := &Task{User: "a@x.com", Name: "B"}
	if err := s.CreateTask(ctx, a); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := s.CreateTask(ctx, b); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	// Delete A twice in quick succession; the second delete must not error
	// and must not disturb B.
	if err := s.DeleteTask(ctx, a.ID); err != nil {
		t.Fatalf("first DeleteTask failed: %v", err)
	}
	if err := s.DeleteTask(ctx, a.ID); err != nil {
		t.Fatalf("second DeleteTask failed: %v", err)
	}

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Errorf("expected final list to equal {B}, got %d tasks", len(tasks))
	}
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	account := &Account{Email: "a@x.com", PasswordHash: "hash"}
	if err := s.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	err := s.CreateAccount(ctx, &Account{Email: "a@x.com", PasswordHash: "other"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetAccountByEmail(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	if err := s.CreateAccount(ctx, &Account{Email: "a@x.com", PasswordHash: "hash"}); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	account, err := s.GetAccountByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail failed: %v", err)
	}
	if account.PasswordHash != "hash" {
		t.Errorf("expected password hash 'hash', got %q", account.PasswordHash)
	}

	_, err = s.GetAccountByEmail(ctx, "missing@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListTasks_ManyTasks(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	for i := 0; i < 25; i++ {
		task := &Task{User: "a@x.com", Name: fmt.Sprintf("task-%02d", i)}
		if err := s.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 25 {
		t.Fatalf("expected 25 tasks, got %d", len(tasks))
	}
}
