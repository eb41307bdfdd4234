//go:build !linux

package threadsig

import "syscall"

// Thread-directed delivery needs tgkill(2) or an equivalent. On other
// platforms both the primitive and the tid resolver report NotSupported,
// so Pin fails up front and handles never come into existence.

func defaultKill(tgid, tid int, sig syscall.Signal) error {
	return &Error{Code: ErrNotSupported, Message: "threadsig: thread-directed signals are not supported on this platform"}
}

func gettid() (int, error) {
	return 0, &Error{Code: ErrNotSupported, Message: "threadsig: thread pinning is not supported on this platform"}
}
