// Package lockdir resolves the system-wide directory where fmutexctl keeps
// lock files for named resources.
package lockdir

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvVar overrides the lock directory when set. It can come from the
// process environment or from a .env file loaded at CLI startup.
const EnvVar = "FMUTEX_LOCK_DIR"

// dirFunc is a package-level variable that holds the directory resolver.
// It is primarily used to allow for easy mocking in unit tests.
var dirFunc = defaultDir

// Dir returns the directory where lock files for named resources are stored,
// creating it if it does not exist.
func Dir() (string, error) {
	dir, err := dirFunc()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return "", fmt.Errorf("failed to create lock directory '%s': %w", dir, err)
	}
	return dir, nil
}

func defaultDir() (string, error) {
	if custom := os.Getenv(EnvVar); custom != "" {
		return custom, nil
	}

	switch runtime.GOOS {
	case "windows":
		programData := os.Getenv("ProgramData")
		if programData == "" {
			return "", fmt.Errorf("%%ProgramData%% environment variable not set")
		}
		return filepath.Join(programData, "fmutex", "locks"), nil
	case "linux":
		// On Linux, use /var/lock/fmutex
		return "/var/lock/fmutex", nil
	default:
		// Fallback for macOS and other POSIX systems
		return "/tmp/fmutex", nil
	}
}
