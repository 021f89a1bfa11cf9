package lockdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirHonorsEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom-locks")
	t.Setenv(EnvVar, want)

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, want, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err, "Dir must create the directory")
	assert.True(t, info.IsDir())
}

func TestDirCreateFailureIsSurfaced(t *testing.T) {
	base := t.TempDir()
	notADir := filepath.Join(base, "plain-file")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o600))

	// A directory can never be created below a regular file.
	t.Setenv(EnvVar, filepath.Join(notADir, "locks"))

	_, err := Dir()
	assert.Error(t, err)
}

func TestDirUsesResolver(t *testing.T) {
	want := filepath.Join(t.TempDir(), "resolved")

	originalDirFunc := dirFunc
	dirFunc = func() (string, error) {
		return want, nil
	}
	defer func() {
		dirFunc = originalDirFunc
	}()

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, want, dir)
}
