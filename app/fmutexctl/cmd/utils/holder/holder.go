// Package holder records who is holding a lock acquired through fmutexctl.
//
// The lock target itself is never written to - the fmutex library keeps its
// content untouched - so holder metadata lives in a JSON sidecar file next
// to the lock file. The sidecar is best-effort operator information, not
// part of the exclusion protocol: the advisory lock alone decides who holds
// the resource.
package holder

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/process"
)

// Info describes a single acquisition.
type Info struct {
	PID      int       `json:"pid"`
	Token    string    `json:"token"`
	Hostname string    `json:"hostname"`
	Command  string    `json:"command,omitempty"`
	Started  time.Time `json:"started"`
}

// New builds the holder record for the current process. Every acquisition
// gets a fresh token so two acquisitions by the same PID stay
// distinguishable.
func New(command string) *Info {
	hostname, _ := os.Hostname()
	return &Info{
		PID:      os.Getpid(),
		Token:    uuid.NewString(),
		Hostname: hostname,
		Command:  command,
		Started:  time.Now(),
	}
}

// SidecarPath returns the sidecar file path for a lock file path.
func SidecarPath(lockPath string) string {
	return lockPath + ".holder.json"
}

// Write stores the holder record next to the lock file.
func Write(lockPath string, info *Info) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode holder info: %w", err)
	}
	if err := os.WriteFile(SidecarPath(lockPath), data, 0o644); err != nil {
		return fmt.Errorf("failed to write holder info: %w", err)
	}
	return nil
}

// Read loads the holder record for a lock file, if one exists.
func Read(lockPath string) (*Info, error) {
	data, err := os.ReadFile(SidecarPath(lockPath))
	if err != nil {
		return nil, err
	}
	info := &Info{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("failed to parse holder info: %w", err)
	}
	return info, nil
}

// Remove deletes the sidecar. A missing sidecar is not an error.
func Remove(lockPath string) error {
	if err := os.Remove(SidecarPath(lockPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove holder info: %w", err)
	}
	return nil
}

// Alive reports whether the recorded holder process still exists.
func (i *Info) Alive() bool {
	exists, err := process.PidExists(int32(i.PID))
	if err != nil {
		return false
	}
	return exists
}

// ProcessName resolves the current name of the recorded holder process.
// It returns an empty string when the process is gone or cannot be
// inspected.
func (i *Info) ProcessName() string {
	p, err := process.NewProcess(int32(i.PID))
	if err != nil {
		return ""
	}
	name, err := p.Name()
	if err != nil {
		return ""
	}
	return name
}
