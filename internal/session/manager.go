// Copyright (c) 2026 FeeFlow. All rights reserved.

package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/feeflow/portal/internal/platform/apperr"
	"github.com/feeflow/portal/internal/platform/backend"
	"github.com/feeflow/portal/internal/platform/constants"
)

// genericSignInMessage is the last resort of the login error message chain:
// server payload message, else server payload error, else transport message,
// else this.
const genericSignInMessage = "Unable to sign in. Please check the credentials and try again."

// AuthResult is the raw authentication payload returned by the backend. It is
// handed back to the login flow untouched so the flow can sequence on
// MustChangePassword and the reported roles.
type AuthResult struct {
	AccessToken        string   `json:"accessToken"`
	MustChangePassword bool     `json:"mustChangePassword"`
	Role               string   `json:"role"`
	Roles              []string `json:"roles"`
}

// Manager is the process-wide session context: current identity, current
// token, and the login/logout mutations. It is the only writer of the
// persistent store and of the backend client's bearer header.
//
// Construct one per process and inject it into consuming components; there is
// no ambient global instance.
type Manager struct {
	store  Store
	client *backend.Client
	logger *slog.Logger

	mu       sync.RWMutex
	token    string
	identity *Identity
	loading  bool
}

// NewManager constructs a [Manager]. The session starts empty and loading;
// call [Manager.Hydrate] before first use.
func NewManager(store Store, client *backend.Client, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:   store,
		client:  client,
		logger:  logger.With(slog.String("component", "session")),
		loading: true,
	}
}

// # Hydration

// Hydrate loads the persisted snapshot into the live session and primes the
// backend client's bearer header. It runs synchronously before the first
// screen renders, so a restart never flashes a logged-out state for an
// authenticated user.
func (m *Manager) Hydrate() {
	snapshot := m.store.Read()

	m.mu.Lock()
	m.token = snapshot.Token
	m.identity = snapshot.Identity
	m.loading = false
	m.mu.Unlock()

	if snapshot.Token != "" {
		m.client.SetAuthToken(snapshot.Token)
		m.logger.Info("session_hydrated",
			slog.String("principal", snapshot.Identity.PrincipalName),
			slog.String("role", string(snapshot.Identity.Role)),
		)
	} else {
		m.client.ClearAuthToken()
	}
}

// # State Accessors

// Loading reports whether hydration has not completed yet.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Token returns the current signed token, empty when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Identity returns a copy of the current identity, or nil when logged out.
func (m *Manager) Identity() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return nil
	}
	copied := *m.identity
	return &copied
}

// Authenticated reports whether a session currently exists.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// # Mutations

// Login posts credentials to the authentication endpoint. On success it
// derives the identity from the returned token (falling back to the
// credential role hint and username), persists the snapshot, installs the
// bearer header, and returns the raw payload for flow sequencing.
//
// On failure nothing is mutated: no stored state, no header, no live session.
// The returned error is an [apperr.AppError] (AUTH_FAILED) whose message is
// safe to render inline.
func (m *Manager) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var result AuthResult
	err := m.client.PostJSON(ctx, constants.PathLogin, creds, &result)
	if err != nil {
		m.logger.Warn("login_rejected", slog.Any("error", err))
		return nil, apperr.Authentication(apperr.Message(err, genericSignInMessage), err)
	}

	identity := DecodeIdentity(m.logger, result.AccessToken, creds.RoleHint, creds.UsernameOrEmail)
	m.apply(result.AccessToken, &identity)

	m.logger.Info("login_succeeded",
		slog.String("principal", identity.PrincipalName),
		slog.String("role", string(identity.Role)),
	)
	return &result, nil
}

// changePasswordRequest is the backend payload for the password-change
// endpoint.
type changePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword posts a password change for the given principal. It mutates
// no session state: the token issued at login stays valid, and the caller
// decides what happens next.
func (m *Manager) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	return m.client.PostJSON(ctx, constants.PathChangePassword, changePasswordRequest{
		Email:           email,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}, nil)
}

// Logout clears the live session, the persisted snapshot, and the backend
// client's bearer header. Safe to call when already logged out.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.token = ""
	m.identity = nil
	m.mu.Unlock()

	m.client.ClearAuthToken()
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("session_clear_failed", slog.Any("error", err))
	}
	m.logger.Info("logged_out")
}

// apply installs a fresh token/identity pair: live state, bearer header, and
// persisted snapshot move together. A persistence failure degrades durability
// only (the in-memory session stays valid) and is logged for operators.
//
// Identity is present iff a token is present: an empty token (a 2xx login
// payload without an accessToken) normalizes the pair to logged-out.
func (m *Manager) apply(token string, identity *Identity) {
	if token == "" {
		identity = nil
	}

	m.mu.Lock()
	m.token = token
	m.identity = identity
	m.mu.Unlock()

	if token == "" {
		m.logger.Warn("login_payload_without_token_treated_as_logged_out")
		m.client.ClearAuthToken()
		if err := m.store.Clear(); err != nil {
			m.logger.Warn("session_clear_failed", slog.Any("error", err))
		}
		return
	}

	m.client.SetAuthToken(token)
	if err := m.store.Write(token, identity); err != nil {
		m.logger.Warn("session_persist_failed", slog.Any("error", err))
	}
}
