// ABOUTME: SQLite implementation of the Store interface using modernc.org/sqlite
// ABOUTME: Provides task/account persistence with automatic schema creation

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			user TEXT NOT NULL,
			name TEXT NOT NULL,
			finished INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user);

		CREATE TABLE IF NOT EXISTS accounts (
			email TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateTask inserts a task, assigning a UUID if the ID is empty.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO tasks (id, user, name, finished, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.User,
		task.Name,
		task.Finished,
		task.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	s.logger.Debug("created task", "id", task.ID, "user", task.User)
	return nil
}

// ListTasks returns every task in the collection in arrival order.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
		SELECT id, user, name, finished, created_at
		FROM tasks
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ListTasksByUser returns the tasks whose User field exactly equals user.
func (s *SQLiteStore) ListTasksByUser(ctx context.Context, user string) ([]*Task, error) {
	query := `
		SELECT id, user, name, finished, created_at
		FROM tasks
		WHERE user = ?
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("querying tasks for user: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// SetTaskFinished updates the finished flag and returns the updated task.
func (s *SQLiteStore) SetTaskFinished(ctx context.Context, id string, finished bool) (*Task, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET finished = ? WHERE id = ?`, finished, id)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.getTask(ctx, id)
}

// DeleteTask removes a task by id. Deleting a nonexistent id is a no-op.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	s.logger.Debug("deleted task", "id", id)
	return nil
}

// getTask retrieves a single task by id
func (s *SQLiteStore) getTask(ctx context.Context, id string) (*Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user, name, finished, created_at FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return task, nil
}

// CreateAccount inserts an account, rejecting duplicate emails.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *Account) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO accounts (email, password_hash, created_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		account.Email,
		account.PasswordHash,
		account.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting account: %w", err)
	}

	s.logger.Debug("created account", "email", account.Email)
	return nil
}

// GetAccountByEmail retrieves an account by its email key.
func (s *SQLiteStore) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT email, password_hash, created_at FROM accounts WHERE email = ?`, email)

	var account Account
	var createdAt string
	err := row.Scan(&account.Email, &account.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying account: %w", err)
	}

	account.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing account created_at: %w", err)
	}

	return &account, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask scans a single task row
func scanTask(row rowScanner) (*Task, error) {
	var task Task
	var createdAt string

	if err := row.Scan(&task.ID, &task.User, &task.Name, &task.Finished, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	task.CreatedAt = parsed

	return &task, nil
}

// scanTasks collects all task rows
func scanTasks(rows *sql.Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// isConstraintViolation checks whether an error is a SQLite constraint failure
func isConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint")
}
