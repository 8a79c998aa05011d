// ABOUTME: Identity gateway issuing bearer credentials for email/password accounts
// ABOUTME: Handles registration and sign-in with bcrypt password hashes

package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskwell/taskwell/internal/store"
)

// Gateway errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// dummyHash is compared against when an account does not exist, keeping
// login timing independent of email existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Session represents an authenticated user: the identity key plus the
// opaque bearer credential attached to every outbound request.
type Session struct {
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// Gateway issues and verifies bearer credentials tied to email/password
// accounts. It is constructed once at startup and injected into the HTTP
// layer so tests can substitute a fake verifier.
type Gateway struct {
	accounts store.AccountStore
	tokens   *JWTVerifier
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewGateway creates an identity gateway backed by the given account store.
func NewGateway(accounts store.AccountStore, tokens *JWTVerifier, tokenTTL time.Duration) *Gateway {
	return &Gateway{
		accounts: accounts,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   slog.Default().With("component", "identity"),
	}
}

// Verify implements TokenVerifier by delegating to the JWT verifier.
func (g *Gateway) Verify(tokenString string) (string, error) {
	return g.tokens.Verify(tokenString)
}

// Register creates a new account and returns a signed-in session.
func (g *Gateway) Register(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &store.Account{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := g.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	g.logger.Info("account registered", "email", email)
	return g.newSession(email)
}

// Login verifies an email/password pair and returns a session.
// Returns ErrInvalidCredentials for both unknown emails and wrong passwords.
func (g *Gateway) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)

	account, err := g.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Dummy comparison to keep timing constant for unknown emails
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	g.logger.Info("login successful", "email", email)
	return g.newSession(email)
}

// newSession issues a fresh bearer token for the given email
func (g *Gateway) newSession(email string) (*Session, error) {
	token, err := g.tokens.Generate(email, g.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &Session{Email: email, AccessToken: token}, nil
}

// validateEmail applies the minimal shape check used at registration
func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || strings.ContainsAny(email, " \t\n") {
		return ErrInvalidEmail
	}
	return nil
}
