package fmutex

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Many goroutines perform a read-modify-write cycle on a counter file while
// holding the lock. Each acquisition uses its own open file description, so
// this exercises real inter-handle exclusion; a lost update means the lock
// failed to exclude.
func TestConcurrentReadModifyWrite(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, "counter.lock")
	counterPath := filepath.Join(dir, "counter")

	require.NoError(t, os.WriteFile(counterPath, []byte("0"), 0o600))

	const (
		workers    = 8
		iterations = 25
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				err := With(lockPath, func() error {
					data, err := os.ReadFile(counterPath)
					if err != nil {
						return err
					}
					n, err := strconv.Atoi(string(data))
					if err != nil {
						return err
					}
					return os.WriteFile(counterPath, []byte(strconv.Itoa(n+1)), 0o600)
				})
				if err != nil {
					t.Error("locked increment failed:", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(counterPath)
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(workers*iterations), string(data), "no update may be lost under the lock")
}
