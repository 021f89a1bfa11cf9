package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hydraide/fmutex"
	"github.com/hydraide/fmutex/app/fmutexctl/cmd/utils/holder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeTargetFree(t *testing.T) {
	target := filepath.Join(t.TempDir(), "resource.lock")
	require.NoError(t, os.WriteFile(target, nil, 0o600))

	output, err := probeTarget(target)
	require.NoError(t, err)
	assert.False(t, output.Held)
	assert.Nil(t, output.Holder)
}

func TestProbeTargetDoesNotCreateFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "never-existed.lock")

	output, err := probeTarget(target)
	require.NoError(t, err)
	assert.False(t, output.Held)
	assert.NoFileExists(t, target, "a probe must not leave a lock file behind")
}

func TestProbeTargetHeld(t *testing.T) {
	target := filepath.Join(t.TempDir(), "resource.lock")

	g, err := fmutex.TryLock(target)
	require.NoError(t, err)
	require.NotNil(t, g)
	defer g.Unlock()

	output, err := probeTarget(target)
	require.NoError(t, err)
	assert.True(t, output.Held)
	assert.Nil(t, output.Holder, "no sidecar was written, so no holder info")
}

func TestProbeTargetHeldWithHolderInfo(t *testing.T) {
	target := filepath.Join(t.TempDir(), "resource.lock")

	g, err := fmutex.TryLock(target)
	require.NoError(t, err)
	require.NotNil(t, g)
	defer g.Unlock()

	require.NoError(t, holder.Write(target, holder.New("sleep 10")))

	output, err := probeTarget(target)
	require.NoError(t, err)
	require.True(t, output.Held)
	require.NotNil(t, output.Holder)
	assert.Equal(t, os.Getpid(), output.Holder.PID)
	assert.False(t, output.Stale, "the holder is this very process, so not stale")
}
