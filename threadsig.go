// Package threadsig delivers signals to individual OS threads rather than
// to the whole process. A goroutine makes itself signalable by calling
// Pin, which locks it to its OS thread and records the kernel thread id;
// any holder of the returned *Thread handle can then Kill it directly.
//
// A handle is resolved to a kernel thread id at delivery time. Thread ids
// are reused by the kernel once a thread has been reaped, so resolution
// and delivery are kept adjacent; the residual window cannot be closed
// from this side and is absorbed by the delivery contract: signaling a
// thread that has already exited is not an error. The outcome of a
// delivery is its return value, never a shared error flag, which is what
// makes Kill safe under arbitrary concurrent use.
package threadsig

import (
	"runtime"
	"sync/atomic"
)

// Thread is an opaque handle for a pinned OS thread. The handle stays
// valid for the life of the registration; the thread behind it may have
// already unpinned or exited, in which case delivery reports success.
type Thread struct {
	id   uint64
	name string
	reg  *Registry

	// tid is the kernel thread id, or 0 once the thread has unpinned.
	// It is read at delivery time, not at handle creation.
	tid atomic.Int64
}

// ID returns the registry-assigned id of this handle.
func (t *Thread) ID() uint64 { return t.id }

// Name returns the name given at Pin time, which may be empty.
func (t *Thread) Name() string { return t.name }

// TID returns the kernel thread id behind the handle, or 0 if the thread
// has unpinned. The value is only meaningful at the instant it is read:
// the kernel may reuse it for an unrelated thread after this one exits.
func (t *Thread) TID() int { return int(t.tid.Load()) }

// Unpin releases the registration and unlocks the goroutine from its OS
// thread. It must be called from the goroutine that called Pin. Calling
// it more than once is a no-op. Deliveries against the handle after
// Unpin report success without reaching the kernel.
func (t *Thread) Unpin() {
	if t.tid.Swap(0) == 0 {
		return
	}
	t.reg.remove(t)
	runtime.UnlockOSThread()
}
