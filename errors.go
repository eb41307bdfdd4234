package threadsig

import (
	"fmt"
	"syscall"
)

// ErrorCode classifies delivery failures. Values mirror the kernel
// outcomes the primitive can report.
type ErrorCode int32

const (
	// ErrOK indicates no error.
	ErrOK ErrorCode = iota
	// ErrNoSuchThread indicates the target thread had already exited.
	// Kill recovers this case internally and reports success, so it is
	// never returned; the constant exists so the taxonomy is complete.
	ErrNoSuchThread
	// ErrInvalidArgument indicates a malformed call, such as a nil handle.
	ErrInvalidArgument
	// ErrInvalidSignal indicates the kernel rejected the signal number.
	ErrInvalidSignal
	// ErrPermissionDenied indicates the caller may not signal the target.
	ErrPermissionDenied
	// ErrNotSupported indicates the platform has no thread-directed
	// signal primitive.
	ErrNotSupported
	// ErrSystem indicates any other kernel failure; the errno is carried
	// verbatim.
	ErrSystem
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrOK:
		return "OK"
	case ErrNoSuchThread:
		return "NoSuchThread"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrInvalidSignal:
		return "InvalidSignal"
	case ErrPermissionDenied:
		return "PermissionDenied"
	case ErrNotSupported:
		return "NotSupported"
	case ErrSystem:
		return "System"
	default:
		return "Unknown"
	}
}

// Error is a delivery failure with its classification and, when the
// failure came from the kernel, the errno behind it.
type Error struct {
	Code    ErrorCode
	Errno   syscall.Errno
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Errno != 0 {
		return fmt.Sprintf("threadsig: %s (%s)", e.Code, e.Errno.Error())
	}
	return "threadsig: " + e.Code.String()
}

// Unwrap exposes the errno so callers can match with errors.Is against
// syscall constants.
func (e *Error) Unwrap() error {
	if e.Errno != 0 {
		return e.Errno
	}
	return nil
}
