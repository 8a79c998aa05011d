// ABOUTME: Client-side auth session provider wrapping the identity endpoints
// ABOUTME: Exposes login/register/logout and the current user to the UI

package session

import (
	"context"
	"log/slog"

	"github.com/taskwell/taskwell/internal/client"
)

// Provider holds the signed-in user for the lifetime of the page session.
// Nothing is persisted; closing the program signs the user out.
//
// Login and Register never return their failure to the caller. The UI is
// expected to read LoginError and render it, mirroring how a login form
// shows an inline error rather than crashing the view.
type Provider struct {
	client   *client.Client
	user     *client.Session
	loginErr string
	logger   *slog.Logger
}

// NewProvider creates a session provider over the given API client.
func NewProvider(c *client.Client) *Provider {
	return &Provider{
		client: c,
		logger: slog.Default().With("component", "session"),
	}
}

// User returns the current signed-in user, or nil when signed out.
func (p *Provider) User() *client.Session {
	return p.user
}

// LoginError returns the message from the most recent failed login or
// register attempt, or "" after a success.
func (p *Provider) LoginError() string {
	return p.loginErr
}

// Login signs in with the identity gateway. Returns true when the UI should
// navigate to the task view.
func (p *Provider) Login(ctx context.Context, email, password string) bool {
	session, err := p.client.Login(ctx, email, password)
	if err != nil {
		p.loginErr = err.Error()
		p.logger.Debug("login failed", "email", email, "error", err)
		return false
	}

	p.user = session
	p.loginErr = ""
	return true
}

// Register creates an account and signs in. Same contract as Login.
func (p *Provider) Register(ctx context.Context, email, password string) bool {
	session, err := p.client.Register(ctx, email, password)
	if err != nil {
		p.loginErr = err.Error()
		p.logger.Debug("registration failed", "email", email, "error", err)
		return false
	}

	p.user = session
	p.loginErr = ""
	return true
}

// Logout clears the session. The UI should navigate back to the login view.
func (p *Provider) Logout() {
	p.client.Logout()
	p.user = nil
	p.loginErr = ""
}
