// Copyright (c) 2026 FeeFlow. All rights reserved.

package nav

import (
	"log/slog"

	"github.com/feeflow/portal/internal/session"
)

// Guard gates protected screens on the existence of a session.
//
// It checks coarse-grained "is there any session" only; role-level
// authorization is enforced by the backend on every API call.
type Guard struct {
	sessions  *session.Manager
	store     session.Store
	navigator Navigator
	logger    *slog.Logger
}

// NewGuard constructs a [Guard].
//
// The store is consulted directly in addition to the live manager state: on a
// cold start a screen can mount before hydration finishes, and a persisted
// token must still count as authenticated.
func NewGuard(sessions *session.Manager, store session.Store, navigator Navigator, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		sessions:  sessions,
		store:     store,
		navigator: navigator,
		logger:    logger.With(slog.String("component", "guard")),
	}
}

// Allow reports whether a session exists, checking live state first and the
// persistent store second.
func (g *Guard) Allow() bool {
	if g.sessions.Authenticated() {
		return true
	}
	return !g.store.Read().Empty()
}

// Require is called when a protected screen mounts. Without a session it
// redirects to the login entry point and returns false; the caller must stop
// rendering the protected content.
func (g *Guard) Require() bool {
	if g.Allow() {
		return true
	}
	g.logger.Info("unauthenticated_mount_redirected")
	g.navigator.Navigate(RouteLogin)
	return false
}
