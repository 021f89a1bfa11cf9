package cmd

import (
	"path/filepath"
	"testing"

	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/lockdir"
	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/lockname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(lockdir.EnvVar, dir)

	t.Run("explicit file wins as-is", func(t *testing.T) {
		target, err := resolveTarget("/tmp/x.lock", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/x.lock", target)
	})

	t.Run("named resource resolves into the lock directory", func(t *testing.T) {
		target, err := resolveTarget("", "nightly-sync")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, lockname.FileName("nightly-sync")), target)
	})

	t.Run("both flags rejected", func(t *testing.T) {
		_, err := resolveTarget("/tmp/x.lock", "nightly-sync")
		assert.Error(t, err)
	})

	t.Run("neither flag rejected", func(t *testing.T) {
		_, err := resolveTarget("", "")
		assert.Error(t, err)
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		_, err := resolveTarget("", "../escape")
		assert.Error(t, err)
	})
}
