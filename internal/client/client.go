// ABOUTME: HTTP client for the taskwell server API
// ABOUTME: Wraps auth and task endpoints with bearer-token handling

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Task is the wire shape of a task as returned by the server.
type Task struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
}

// Session is the wire shape of an authenticated session.
type Session struct {
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// credentials is the JSON body for the auth endpoints.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createTaskRequest is the JSON body for POST /tasks.
type createTaskRequest struct {
	User     string `json:"user"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
}

// setFinishedRequest is the JSON body for PUT /tasks/{id}/finished.
type setFinishedRequest struct {
	Finished bool `json:"finished"`
}

// Client talks to a taskwell server. The zero value is not usable; construct
// with New. Client is not safe for concurrent use by multiple goroutines
// because SetToken mutates the attached credential.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the server at baseURL (e.g. "http://localhost:3001").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently attached bearer token.
func (c *Client) Token() string {
	return c.token
}

// Login signs in with an email/password pair and attaches the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, &session, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.token = session.AccessToken
	return &session, nil
}

// Register creates an account and attaches the returned token.
func (c *Client) Register(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/auth/register", credentials{Email: email, Password: password}, &session, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.token = session.AccessToken
	return &session, nil
}

// Logout discards the attached token. Tokens are not revocable server-side;
// signing out is purely a client-local operation.
func (c *Client) Logout() {
	c.token = ""
}

// ListTasks fetches the tasks owned by user.
func (c *Client) ListTasks(ctx context.Context, user string) ([]Task, error) {
	var tasks []Task
	path := "/tasks/" + url.PathEscape(user)
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks, http.StatusOK); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListAllTasks fetches the entire task collection.
func (c *Client) ListAllTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks, http.StatusOK); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask adds a task for user and returns the task as the server stored
// it. The id comes from the parsed response body.
func (c *Client) CreateTask(ctx context.Context, user, name string) (*Task, error) {
	var task Task
	body := createTaskRequest{User: user, Name: name, Finished: false}
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task, http.StatusCreated); err != nil {
		return nil, err
	}
	return &task, nil
}

// SetFinished updates a task's finished flag and returns the updated task.
func (c *Client) SetFinished(ctx context.Context, id string, finished bool) (*Task, error) {
	var task Task
	path := "/tasks/" + url.PathEscape(id) + "/finished"
	if err := c.do(ctx, http.MethodPut, path, setFinishedRequest{Finished: finished}, &task, http.StatusOK); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	path := "/tasks/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

// do issues a JSON request and decodes the response into out (if non-nil).
// A response status other than wantStatus becomes an error carrying the
// server's body text.
func (c *Client) do(ctx context.Context, method, path string, body, out any, wantStatus int) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return newStatusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// StatusError is returned when the server answers with an unexpected status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// newStatusError builds a StatusError from a non-matching response. Error
// bodies may be plain text or a JSON {"error": "..."} object.
func newStatusError(resp *http.Response) *StatusError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := strings.TrimSpace(string(data))

	var jsonBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &jsonBody); err == nil && jsonBody.Error != "" {
		message = jsonBody.Error
	}

	return &StatusError{StatusCode: resp.StatusCode, Message: message}
}
