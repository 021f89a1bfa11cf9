// Package fmutex provides advisory mutual exclusion between cooperating
// processes over a single file path.
//
// A call to Lock or TryLock opens (creating if necessary) the file at the
// given path and requests an exclusive advisory lock on it through the
// platform's file-locking facility (flock(2) on unix, LockFileEx on
// windows). On success the caller receives a Guard that owns the open
// handle; releasing the Guard releases the lock and closes the handle.
// The file's content is never read, written, or interpreted, and the file
// is never deleted - it is only a rendezvous point.
//
// Typical usage:
//
//	g, err := fmutex.Lock("/var/lock/myapp.lock")
//	if err != nil {
//		return err
//	}
//	defer g.Unlock()
//
//	// mutually exclusive work here
//
// If the holding process terminates, even by crash, the operating system
// releases the lock as part of handle teardown. No heartbeat or liveness
// protocol is layered on top.
//
// # Caveats
//
// The lock is advisory: it only constrains processes that go through the
// same locking facility. It does not prevent unrelated reads or writes to
// the file.
//
// The exclusivity scope of the underlying primitive is the open file
// description, not the thread. Two goroutines locking the same path
// through separate calls do exclude each other (each call opens its own
// descriptor), but the package adds no in-process synchronization of its
// own, and behavior across fork-like process duplication is platform
// defined. Do not rely on this package for intra-process exclusion.
//
// No fairness or FIFO ordering is guaranteed between waiters; the platform
// decides which blocked acquirer is granted the lock next. A blocking Lock
// has no timeout and cannot be cancelled - callers needing a bound must
// layer one on top.
package fmutex
