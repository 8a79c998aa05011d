// ABOUTME: Wiring tests for the assembled server
// ABOUTME: Exercises health, auth, and task routes through the full handler

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.HTTPAddr = "localhost:0"
	cfg.Database.Path = filepath.Join(t.TempDir(), "taskwell.db")
	cfg.Identity.JWTSecret = "server-wiring-test-secret-32byte!"
	cfg.Identity.TokenTTL = time.Hour

	srv, err := New(cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = srv.store.Close()
	})
	return srv
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRegisterLoginAndTaskFlow(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	creds, err := json.Marshal(map[string]string{
		"email":    "flow@example.com",
		"password": "hunter22",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(creds))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var session struct {
		Email       string `json:"email"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "flow@example.com", session.Email)

	body, err := json.Marshal(map[string]string{
		"user": session.Email,
		"name": "wire everything together",
	})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/tasks/flow@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "wire everything together", tasks[0]["name"])
}

func TestTaskRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid token", rec.Body.String())
}

func TestNewRejectsShortSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.HTTPAddr = "localhost:0"
	cfg.Database.Path = filepath.Join(t.TempDir(), "taskwell.db")
	cfg.Identity.JWTSecret = "too-short"
	cfg.Identity.TokenTTL = time.Hour

	_, err := New(cfg, testLogger())
	assert.Error(t, err)
}
