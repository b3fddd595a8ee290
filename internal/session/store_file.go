// Copyright (c) 2026 FeeFlow. All rights reserved.

package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/feeflow/portal/internal/platform/constants"
)

// FileStore implements [Store] on a single JSON document in a state directory.
//
// Both storage keys ("token", "user") live in one document so that a write or
// clear replaces them together; the underlying rename keeps the atomicity the
// [Store] contract demands even though the medium has no transactions.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// fileSnapshot is the on-disk document. Field names are the storage keys.
type fileSnapshot struct {
	Token    string    `json:"token,omitempty"`
	Identity *Identity `json:"user,omitempty"`
}

// NewFileStore creates a [FileStore] rooted at dir.
//
// The directory is created eagerly. Creation failure is not fatal: the store
// still works, reads are empty, and writes will report the error — the
// session simply degrades to logged-out per the [Store] contract.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logger.Warn("session_state_dir_unavailable",
			slog.String("dir", dir),
			slog.Any("error", err),
		)
	}
	return &FileStore{
		path:   filepath.Join(dir, constants.StateFileName),
		logger: logger,
	}
}

// Read returns the persisted snapshot. Any failure (missing file, bad JSON,
// permission error) yields an empty snapshot; only unexpected failures are
// logged for operators.
func (s *FileStore) Read() Snapshot {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("session_state_unreadable", slog.Any("error", err))
		}
		return Snapshot{}
	}

	var doc fileSnapshot
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warn("session_state_corrupt", slog.Any("error", err))
		return Snapshot{}
	}
	// A token without an identity (or vice versa) violates the session
	// invariant; treat the snapshot as logged-out rather than guessing.
	if doc.Token == "" || doc.Identity == nil {
		return Snapshot{}
	}
	return Snapshot{Token: doc.Token, Identity: doc.Identity}
}

// Write persists token and identity as one document, via a temp file and
// rename so a crash mid-write never leaves a partial snapshot.
func (s *FileStore) Write(token string, identity *Identity) error {
	raw, err := json.Marshal(fileSnapshot{Token: token, Identity: identity})
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the snapshot. Removing an absent file is a no-op so that
// logout stays idempotent.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
