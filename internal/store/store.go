// ABOUTME: Store interfaces and data types for taskwell persistence
// ABOUTME: Defines Task, Account structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when registering an email that already has an account
var ErrDuplicateEmail = errors.New("email already registered")

// Task represents a single to-do item owned by a user.
// The ID is assigned exactly once by the store at creation time and is the
// sole stable identity for update and delete.
type Task struct {
	ID        string
	User      string // owner's email
	Name      string
	Finished  bool
	CreatedAt time.Time
}

// Account represents an identity gateway account
type Account struct {
	Email        string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}

// TaskStore defines the document operations for tasks
type TaskStore interface {
	// CreateTask inserts a task, assigning an ID if one is not set.
	CreateTask(ctx context.Context, task *Task) error

	// ListTasks returns every task in the collection in arrival order.
	ListTasks(ctx context.Context) ([]*Task, error)

	// ListTasksByUser returns the tasks whose User field exactly equals user.
	ListTasksByUser(ctx context.Context, user string) ([]*Task, error)

	// SetTaskFinished updates the finished flag and returns the updated task.
	// Returns ErrNotFound if no task has the given id.
	SetTaskFinished(ctx context.Context, id string, finished bool) (*Task, error)

	// DeleteTask removes a task by id. Deleting a nonexistent id is a no-op.
	DeleteTask(ctx context.Context, id string) error
}

// AccountStore defines the operations for identity accounts
type AccountStore interface {
	// CreateAccount inserts an account. Returns ErrDuplicateEmail if the
	// email is already registered.
	CreateAccount(ctx context.Context, account *Account) error

	// GetAccountByEmail retrieves an account by its email key.
	// Returns ErrNotFound if no account exists.
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

// Store combines task and account persistence
type Store interface {
	TaskStore
	AccountStore

	// Close releases any resources held by the store
	Close() error
}
