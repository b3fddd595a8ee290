// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package session implements the client-side authentication session layer.

It owns the signed-token lifecycle: hydration from persistent storage before
first render, identity derivation from the opaque token, login/logout
mutations, and synchronization of the shared backend client's bearer header.

# Architecture

  - Store: durable key-value snapshot surviving restarts (file backend).
  - DecodeIdentity: pure token → {role, principal} derivation with fallbacks.
  - Manager: the one writer of session state and of the backend auth header.

The invariant throughout: identity is present iff a token is present, and the
backend client's Authorization header always equals the current token.
*/
package session

import "strings"

// # Roles

// Role is the authorization label carried by a session identity.
//
// Backend role strings are not a closed enum ("ADMIN", "ROLE_ADMIN", ...), so
// routing never compares roles for equality; see [Role.IsAdmin].
type Role string

const (
	// RoleAdmin routes to the admin console.
	RoleAdmin Role = "ADMIN"

	// RoleStudent routes through landing resolution.
	RoleStudent Role = "STUDENT"

	// RoleUser is the conservative fallback when the token carries no usable
	// role claim. It never matches the admin destination.
	RoleUser Role = "USER"
)

// Normalize uppercases the role; every routing decision happens on the
// normalized form.
func (r Role) Normalize() Role {
	return Role(strings.ToUpper(string(r)))
}

// IsAdmin reports whether the role selects the admin destination.
//
// This is deliberately a substring containment check, not an enum comparison:
// backends emit prefixed role strings such as "ROLE_ADMIN". It is a widening
// match — do not tighten it without product confirmation.
func (r Role) IsAdmin() bool {
	return strings.Contains(string(r.Normalize()), "ADMIN")
}

// # Identity

// Identity is the session's view of the signed-in principal, derived from the
// token (or from caller-supplied fallbacks when the token yields nothing).
//
// The JSON field names match the persisted snapshot format.
type Identity struct {
	Role          Role   `json:"role"`
	PrincipalName string `json:"username"`
}

// Credentials is one submission's transient input. RoleHint is optional and
// only consulted when the returned token carries no usable role claim.
type Credentials struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
	RoleHint        Role   `json:"-"`
}
