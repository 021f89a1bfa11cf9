//go:build windows
// +build windows

package fmutex

import (
	"errors"

	"golang.org/x/sys/windows"
)

type handle struct {
	h windows.Handle
}

func open(path string) (*handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	// OPEN_ALWAYS, GENERIC_READ|GENERIC_WRITE, share read/write
	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_ALWAYS,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return nil, err
	}
	return &handle{h: h}, nil
}

func (h *handle) lock() error {
	ol := new(windows.Overlapped)
	return windows.LockFileEx(
		h.h,
		windows.LOCKFILE_EXCLUSIVE_LOCK,
		0,
		1, 0, // lock 1 byte
		ol,
	)
}

func (h *handle) tryLock() (bool, error) {
	ol := new(windows.Overlapped)
	err := windows.LockFileEx(
		h.h,
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0,
		1, 0,
		ol,
	)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
		return false, nil
	}
	return false, err
}

func (h *handle) unlock() error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(h.h, 0, 1, 0, ol)
}

func (h *handle) close() error {
	return windows.CloseHandle(h.h)
}
