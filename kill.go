package threadsig

import (
	"errors"
	"os"
	"syscall"
)

// Kill delivers sig to the thread behind t. The handle is resolved to a
// kernel thread id immediately before delivery and sig is forwarded
// unvalidated; sig 0 performs the conventional existence probe without
// delivering anything.
//
// A target that has already unpinned, or whose thread exits between
// resolution and delivery, is reported as success: the caller cannot
// distinguish "delivered just before exit" from "exited just before
// delivery", and the contract makes both indistinguishable successes.
// Every other kernel failure is surfaced as an *Error carrying the
// errno. Kill takes no locks and holds no state of its own; it may be
// called from any number of goroutines against any handles, including
// the same one.
func (r *Registry) Kill(t *Thread, sig syscall.Signal) error {
	if t == nil {
		return &Error{Code: ErrInvalidArgument, Message: "threadsig: nil thread handle"}
	}
	tid := int(t.tid.Load())
	if tid == 0 {
		return nil
	}
	return mapDeliveryErr(r.kill(os.Getpid(), tid, sig))
}

// Alive reports whether the thread behind t still exists, using the
// signal-0 existence probe. A handle that has unpinned is not alive.
func (r *Registry) Alive(t *Thread) bool {
	if t == nil {
		return false
	}
	tid := int(t.tid.Load())
	if tid == 0 {
		return false
	}
	return r.kill(os.Getpid(), tid, 0) == nil
}

// BatchFailure records a single failed delivery within a KillAll.
type BatchFailure struct {
	Thread *Thread
	Err    *Error
}

// BatchResult aggregates the outcome of a KillAll.
type BatchResult struct {
	Delivered []*Thread
	Failed    []BatchFailure
}

// KillAll delivers sig to every registered thread. Individual failures
// are collected into the result rather than aborting the sweep; the
// already-exited success rule applies per thread.
func (r *Registry) KillAll(sig syscall.Signal) (*BatchResult, error) {
	snapshot := r.Threads()

	res := &BatchResult{}
	for _, t := range snapshot {
		err := r.Kill(t, sig)
		if err == nil {
			res.Delivered = append(res.Delivered, t)
			continue
		}
		var terr *Error
		if !errors.As(err, &terr) {
			return nil, err
		}
		res.Failed = append(res.Failed, BatchFailure{Thread: t, Err: terr})
	}
	return res, nil
}

// mapDeliveryErr translates the kernel primitive's outcome into the
// delivery contract. Exactly one failure is recovered locally: ESRCH
// means the target exited before delivery, which the contract defines as
// success. Everything else passes through unchanged.
func mapDeliveryErr(err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return err
	}
	switch errno {
	case syscall.ESRCH:
		return nil
	case syscall.EINVAL:
		return &Error{Code: ErrInvalidSignal, Errno: errno}
	case syscall.EPERM:
		return &Error{Code: ErrPermissionDenied, Errno: errno}
	default:
		return &Error{Code: ErrSystem, Errno: errno}
	}
}
