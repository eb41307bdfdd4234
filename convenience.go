package threadsig

import "syscall"

// Pin registers the calling goroutine with the Default registry.
func Pin(name string) (*Thread, error) { return Default.Pin(name) }

// Kill delivers sig through the Default registry.
func Kill(t *Thread, sig syscall.Signal) error { return Default.Kill(t, sig) }

// Alive probes t through the Default registry.
func Alive(t *Thread) bool { return Default.Alive(t) }

// KillAll delivers sig to every thread registered with the Default registry.
func KillAll(sig syscall.Signal) (*BatchResult, error) { return Default.KillAll(sig) }

// Threads returns a snapshot of the Default registry's handles.
func Threads() []*Thread { return Default.Threads() }

// Reset abandons all registrations on the Default registry.
func Reset() { Default.Reset() }

// SetLogger sets the logger for the Default registry. Safe for concurrent
// use; registry operations snapshot the value before logging.
func SetLogger(l LoggerFunc) {
	Default.mu.Lock()
	Default.logf = l
	Default.mu.Unlock()
}

// SetDebug toggles debug logging for the Default registry. Safe for
// concurrent use; registry operations snapshot the value before logging.
func SetDebug(enabled bool) {
	Default.mu.Lock()
	Default.debug = enabled
	Default.mu.Unlock()
}
