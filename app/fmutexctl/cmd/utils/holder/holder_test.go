package holder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundtrip(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "resource.lock")

	info := New("sleep 10")
	require.NotEmpty(t, info.Token)
	assert.Equal(t, os.Getpid(), info.PID)

	require.NoError(t, Write(lockPath, info))
	assert.FileExists(t, SidecarPath(lockPath))

	got, err := Read(lockPath)
	require.NoError(t, err)
	assert.Equal(t, info.PID, got.PID)
	assert.Equal(t, info.Token, got.Token)
	assert.Equal(t, info.Hostname, got.Hostname)
	assert.Equal(t, "sleep 10", got.Command)
}

func TestTokensAreUniquePerAcquisition(t *testing.T) {
	a := New("")
	b := New("")
	assert.NotEqual(t, a.Token, b.Token)
}

func TestReadMissingSidecar(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "resource.lock")

	_, err := Read(lockPath)
	assert.True(t, os.IsNotExist(err), "missing sidecar should surface as not-exist")
}

func TestRemoveIsIdempotent(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "resource.lock")

	require.NoError(t, Write(lockPath, New("")))
	require.NoError(t, Remove(lockPath))
	assert.NoFileExists(t, SidecarPath(lockPath))

	// A second remove must not fail.
	require.NoError(t, Remove(lockPath))
}

func TestAlive(t *testing.T) {
	self := New("")
	assert.True(t, self.Alive(), "the test process itself must be alive")

	gone := &Info{PID: 999999999}
	assert.False(t, gone.Alive(), "an absurdly high PID should not exist")
}
