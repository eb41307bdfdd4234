//go:build linux

package threadsig

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// defaultKill forwards to tgkill(2), which addresses one thread within a
// thread group rather than the whole process. The tgid guard keeps a
// reused tid in another process from being hit.
func defaultKill(tgid, tid int, sig syscall.Signal) error {
	return unix.Tgkill(tgid, tid, sig)
}

func gettid() (int, error) {
	return unix.Gettid(), nil
}
