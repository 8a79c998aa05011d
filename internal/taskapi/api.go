// ABOUTME: HTTP handlers for the task REST surface
// ABOUTME: Translates list/create/finish/delete requests into document store calls

package taskapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskwell/taskwell/internal/store"
)

// TaskResponse is the JSON shape of a task on the wire. Exactly these four
// fields; anything else a stored document might carry is not passed through.
type TaskResponse struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
}

// CreateTaskRequest is the JSON request body for POST /tasks.
type CreateTaskRequest struct {
	User     string `json:"user"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
}

// SetFinishedRequest is the JSON request body for PUT /tasks/{id}/finished.
type SetFinishedRequest struct {
	Finished bool `json:"finished"`
}

// Service exposes the task REST operations over an injected document store.
type Service struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// New creates a task service backed by the given store.
func New(tasks store.TaskStore) *Service {
	return &Service{
		tasks:  tasks,
		logger: slog.Default().With("component", "taskapi"),
	}
}

// RegisterRoutes registers the task routes on the given mux, each wrapped
// in the provided auth middleware.
func (s *Service) RegisterRoutes(mux *http.ServeMux, authn func(http.Handler) http.Handler) {
	mux.Handle("GET /tasks", authn(http.HandlerFunc(s.handleListTasks)))
	mux.Handle("GET /tasks/{user}", authn(http.HandlerFunc(s.handleListUserTasks)))
	mux.Handle("POST /tasks", authn(http.HandlerFunc(s.handleCreateTask)))
	mux.Handle("PUT /tasks/{id}/finished", authn(http.HandlerFunc(s.handleSetFinished)))
	mux.Handle("DELETE /tasks/{id}", authn(http.HandlerFunc(s.handleDeleteTask)))
}

// handleListTasks handles GET /tasks.
// It returns the entire task collection as a JSON array.
func (s *Service) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.ListTasks(r.Context())
	if err != nil {
		s.storeError(w, "listing tasks", err)
		return
	}

	s.writeJSON(w, http.StatusOK, toResponses(tasks))
}

// handleListUserTasks handles GET /tasks/{user}.
// It returns the tasks whose user field exactly equals the path segment.
func (s *Service) handleListUserTasks(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")

	tasks, err := s.tasks.ListTasksByUser(r.Context(), user)
	if err != nil {
		s.storeError(w, "listing user tasks", err)
		return
	}

	s.writeJSON(w, http.StatusOK, toResponses(tasks))
}

// handleCreateTask handles POST /tasks.
// The store assigns the id; the response echoes the input fields plus the id.
func (s *Service) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	task := &store.Task{
		User:     req.User,
		Name:     req.Name,
		Finished: req.Finished,
	}
	if err := s.tasks.CreateTask(r.Context(), task); err != nil {
		s.storeError(w, "creating task", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toResponse(task))
}

// handleSetFinished handles PUT /tasks/{id}/finished.
func (s *Service) handleSetFinished(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req SetFinishedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	task, err := s.tasks.SetTaskFinished(r.Context(), id, req.Finished)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		s.storeError(w, "updating task", err)
		return
	}

	s.writeJSON(w, http.StatusOK, toResponse(task))
}

// handleDeleteTask handles DELETE /tasks/{id}.
// Deleting an id that no longer exists still succeeds with 204.
func (s *Service) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.tasks.DeleteTask(r.Context(), id); err != nil {
		s.storeError(w, "deleting task", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// storeError maps any document store failure to a 500 carrying the raw
// error message, matching the service's documented contract.
func (s *Service) storeError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("store operation failed", "op", op, "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// writeJSON writes a JSON response with the given status code
func (s *Service) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encoding response failed", "error", err)
	}
}

// toResponse converts a stored task to its wire shape
func toResponse(t *store.Task) TaskResponse {
	return TaskResponse{
		ID:       t.ID,
		User:     t.User,
		Name:     t.Name,
		Finished: t.Finished,
	}
}

// toResponses converts a task list, always yielding a non-nil slice so an
// empty collection serializes as [] rather than null.
func toResponses(tasks []*store.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toResponse(t))
	}
	return out
}
