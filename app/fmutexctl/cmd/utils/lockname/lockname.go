// Package lockname maps user-facing resource names to lock file names.
//
// A resource name is a short identifier chosen by the operator ("nightly-sync",
// "cache.rebuild"). The lock file name is derived from it by hashing, so any
// accepted name maps to a flat, filesystem-safe file in the lock directory and
// two processes using the same name always rendezvous on the same file.
package lockname

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const maxNameLength = 64

// Validate checks that a resource name is acceptable.
// Names are limited to letters, digits, '.', '-' and '_', must start with a
// letter or digit, and may not be longer than 64 characters. Path separators
// are rejected so a name can never escape the lock directory.
func Validate(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("resource name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("resource name too long: maximum is %d characters", maxNameLength)
	}

	first := rune(name[0])
	if !isAlnum(first) {
		return fmt.Errorf("resource name must start with a letter or digit")
	}

	for _, r := range name {
		if isAlnum(r) || r == '.' || r == '-' || r == '_' {
			continue
		}
		return fmt.Errorf("resource name contains invalid character %q: only letters, digits, '.', '-' and '_' are allowed", r)
	}

	return nil
}

// FileName derives the lock file name for a validated resource name.
// The name is hashed so the file name stays flat and stable regardless of
// what characters the resource name contains.
func FileName(name string) string {
	sum := xxhash.Sum64String(strings.TrimSpace(name))
	return fmt.Sprintf("fmutex-%016x.lock", sum)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
