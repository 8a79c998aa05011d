// ABOUTME: Mock Store implementation for testing
// ABOUTME: Allows tests to run without SQLite

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	mu        sync.RWMutex
	tasks     map[string]*Task    // keyed by task ID
	taskOrder []string            // arrival order of task IDs
	accounts  map[string]*Account // keyed by email

	// FailWith, when set, makes every operation return this error.
	// Used to exercise upstream-failure paths in handler tests.
	FailWith error
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		tasks:    make(map[string]*Task),
		accounts: make(map[string]*Account),
	}
}

// CreateTask stores a new task, assigning a UUID if the ID is empty.
func (m *MockStore) CreateTask(ctx context.Context, task *Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	// Make a copy to avoid external modification
	t := *task
	m.tasks[t.ID] = &t
	m.taskOrder = append(m.taskOrder, t.ID)

	return nil
}

// ListTasks returns every task in arrival order.
func (m *MockStore) ListTasks(ctx context.Context) ([]*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	result := make([]*Task, 0, len(m.taskOrder))
	for _, id := range m.taskOrder {
		if t, ok := m.tasks[id]; ok {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

// ListTasksByUser returns the tasks owned by user, in arrival order.
func (m *MockStore) ListTasksByUser(ctx context.Context, user string) ([]*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	result := make([]*Task, 0)
	for _, id := range m.taskOrder {
		if t, ok := m.tasks[id]; ok && t.User == user {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

// SetTaskFinished updates the finished flag and returns the updated task.
func (m *MockStore) SetTaskFinished(ctx context.Context, id string, finished bool) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	t, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	t.Finished = finished

	copied := *t
	return &copied, nil
}

// DeleteTask removes a task by id. Deleting a nonexistent id is a no-op.
func (m *MockStore) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if _, ok := m.tasks[id]; !ok {
		return nil
	}
	delete(m.tasks, id)
	for i, tid := range m.taskOrder {
		if tid == id {
			m.taskOrder = append(m.taskOrder[:i], m.taskOrder[i+1:]...)
			break
		}
	}
	return nil
}

// CreateAccount stores a new account, rejecting duplicate emails.
func (m *MockStore) CreateAccount(ctx context.Context, account *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	if _, ok := m.accounts[account.Email]; ok {
		return ErrDuplicateEmail
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	a := *account
	m.accounts[a.Email] = &a
	return nil
}

// GetAccountByEmail retrieves an account by email.
func (m *MockStore) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}

	a, ok := m.accounts[email]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *a
	return &copied, nil
}

// Close is a no-op for the mock store.
func (m *MockStore) Close() error {
	return nil
}
