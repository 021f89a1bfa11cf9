package fmutex

import (
	"fmt"
)

// Guard is the sole owner of the open handle while the lock is held.
// It is created only by a successful Lock or TryLock and must not be
// copied; exactly one release happens per acquisition.
//
// While a Guard is alive, the current process holds the exclusive
// advisory lock on its path.
type Guard struct {
	path string
	h    *handle
}

// Lock acquires the exclusive advisory lock on path, blocking the calling
// goroutine until the lock becomes available or an unrecoverable error
// occurs. The file is created if it does not exist and is left in place
// after release.
//
// Signal-interrupted lock requests are retried internally; they are an
// artifact of signal delivery, not contention.
func Lock(path string) (*Guard, error) {
	h, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("fmutex: open lock file: %w", err)
	}
	if err := h.lock(); err != nil {
		_ = h.close()
		return nil, fmt.Errorf("fmutex: lock %s: %w", path, err)
	}
	return &Guard{path: path, h: h}, nil
}

// TryLock attempts to acquire the exclusive advisory lock on path without
// blocking. It returns (nil, nil) when the lock is currently held by
// another holder - contention is an ordinary outcome, not an error. Any
// other failure while opening the file or requesting the lock is returned
// as an error.
func TryLock(path string) (*Guard, error) {
	h, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("fmutex: open lock file: %w", err)
	}
	acquired, err := h.tryLock()
	if err != nil {
		_ = h.close()
		return nil, fmt.Errorf("fmutex: try lock %s: %w", path, err)
	}
	if !acquired {
		_ = h.close()
		return nil, nil
	}
	return &Guard{path: path, h: h}, nil
}

// With runs fn while holding the exclusive advisory lock on path. The
// lock is released on every exit path, including a panic propagating out
// of fn. Release errors during the implicit teardown are swallowed; fn's
// error (or the acquisition error) is returned.
func With(path string, fn func() error) error {
	g, err := Lock(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = g.Unlock()
	}()
	return fn()
}

// Unlock releases the advisory lock and closes the underlying handle.
// The release happens at most once: calling Unlock again, or on a nil
// Guard, is a no-op returning nil. Deferred callers may ignore the
// returned error; callers that need to know whether the release took
// effect can check it.
func (g *Guard) Unlock() error {
	if g == nil || g.h == nil {
		return nil
	}
	h := g.h
	g.h = nil
	if err := h.unlock(); err != nil {
		_ = h.close()
		return fmt.Errorf("fmutex: unlock %s: %w", g.path, err)
	}
	if err := h.close(); err != nil {
		return fmt.Errorf("fmutex: close %s: %w", g.path, err)
	}
	return nil
}

// Path returns the lock target path this Guard was acquired on.
func (g *Guard) Path() string {
	return g.path
}
