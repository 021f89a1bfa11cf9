//go:build !windows
// +build !windows

package fmutex

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

type handle struct {
	f *os.File
}

func open(path string) (*handle, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, err
	}
	return &handle{f: f}, nil
}

func (h *handle) lock() error {
	for {
		err := unix.Flock(int(h.f.Fd()), unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

func (h *handle) tryLock() (bool, error) {
	err := unix.Flock(int(h.f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err == nil {
		return true, nil
	}

	// Hedging bets here and checking either EWOULDBLOCK or EAGAIN,
	// Per GNU docs ...
	//     Portability Note: In many older Unix systems ...
	//     [EWOULDBLOCK was] a distinct error code different from EAGAIN.
	//     To make your program portable, you should check for both codes
	//     and treat them the same.
	// Ref: https://www.gnu.org/savannah-checkouts/gnu/libc/manual/html_node/Error-Codes.html
	if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
		return false, nil
	}
	return false, err
}

func (h *handle) unlock() error {
	return unix.Flock(int(h.f.Fd()), unix.LOCK_UN)
}

func (h *handle) close() error {
	return h.f.Close()
}
