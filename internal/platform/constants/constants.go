// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package constants provides centralized, immutable values for the portal core.

It defines storage keys, backend endpoint paths, and cross-cutting limits that
are shared between different layers of the client.

Categories:

  - Metadata: application name and version.
  - Storage: keys of the persisted session snapshot.
  - Backend: endpoint paths of the fee-management API.
  - Security: password policy enforced locally before any network call.

Using this package ensures magic strings are eliminated from the flow logic.
*/
package constants

// # Metadata

const (
	AppName    = "feeflow-portal"
	AppVersion = "0.1.0-dev"
)

// # Persistent Storage

const (
	// StorageKeyToken is the key under which the signed token is persisted.
	StorageKeyToken = "token"

	// StorageKeyIdentity is the key under which the identity snapshot is persisted.
	StorageKeyIdentity = "user"

	// StateFileName is the single JSON document holding both storage keys.
	// Token and identity are written and cleared together, never one by one.
	StateFileName = "session.json"
)

// # Backend Endpoints

const (
	// PathLogin is the credential-submission endpoint.
	PathLogin = "/auth/login"

	// PathChangePassword is the forced password-change endpoint.
	PathChangePassword = "/auth/change-password"

	// PathStudents is the read-only roster endpoint.
	PathStudents = "/students"
)

// # Security

const (
	// MinPasswordLength is the minimum accepted length for a new password.
	// Checked locally; the backend enforces its own policy on top.
	MinPasswordLength = 8
)
