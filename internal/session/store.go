// Copyright (c) 2026 FeeFlow. All rights reserved.

package session

// Snapshot is the durable view of a session: the signed token and the
// last-known identity. Both are present together or absent together.
type Snapshot struct {
	Token    string    `json:"token,omitempty"`
	Identity *Identity `json:"user,omitempty"`
}

// Empty reports whether the snapshot represents a logged-out state.
func (s Snapshot) Empty() bool {
	return s.Token == ""
}

// # Persistent Session Store

// Store is the durable key-value storage surviving restarts.
//
// All three operations are synchronous and perform no network I/O: Read must
// be usable before the UI's first paint so a restart never flashes an
// unauthenticated state for a signed-in user.
//
// A store whose underlying medium is unavailable degrades to logged-out:
// Read returns an empty [Snapshot] rather than an error.
type Store interface {
	// Read returns the persisted snapshot, or an empty one when storage is
	// missing, corrupt, or unavailable.
	Read() Snapshot

	// Write persists token and identity as one atomic unit. The stored state
	// is never partially present.
	Write(token string, identity *Identity) error

	// Clear removes the persisted snapshot. Idempotent.
	Clear() error
}
