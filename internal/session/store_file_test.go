// Copyright (c) 2026 FeeFlow. All rights reserved.

package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feeflow/portal/internal/session"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := session.NewFileStore(t.TempDir(), nil)

	identity := &session.Identity{Role: session.RoleStudent, PrincipalName: "aditi@example.com"}
	require.NoError(t, store.Write("token-abc", identity))

	snapshot := store.Read()
	assert.Equal(t, "token-abc", snapshot.Token)
	require.NotNil(t, snapshot.Identity)
	assert.Equal(t, session.RoleStudent, snapshot.Identity.Role)
	assert.Equal(t, "aditi@example.com", snapshot.Identity.PrincipalName)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := session.NewFileStore(t.TempDir(), nil)
	require.NoError(t, store.Write("tok", &session.Identity{Role: session.RoleUser}))

	require.NoError(t, store.Clear())
	assert.True(t, store.Read().Empty())
	assert.Nil(t, store.Read().Identity)

	// Clearing an already-empty store must also succeed.
	require.NoError(t, store.Clear())
	assert.True(t, store.Read().Empty())
}

func TestFileStore_CorruptStateReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store := session.NewFileStore(dir, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{nope"), 0o600))

	assert.True(t, store.Read().Empty())
}

func TestFileStore_PartialSnapshotReadsAsEmpty(t *testing.T) {
	// Token without identity violates the session invariant; the store must
	// not resurrect half a session.
	dir := t.TempDir()
	store := session.NewFileStore(dir, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte(`{"token":"t"}`), 0o600))

	assert.True(t, store.Read().Empty())
}

func TestFileStore_UnavailableStorageDegradesToLoggedOut(t *testing.T) {
	// Use a file as the "directory" so creation fails and writes error out.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o600))

	store := session.NewFileStore(filepath.Join(blocked, "state"), nil)
	assert.True(t, store.Read().Empty())
	assert.Error(t, store.Write("tok", &session.Identity{Role: session.RoleUser}))
}
