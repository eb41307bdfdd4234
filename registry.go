package threadsig

import (
	"runtime"
	"sync"
	"syscall"
)

// killFunc is the kernel delivery primitive: send sig to thread tid in
// thread group tgid. It exists as a seam so tests can exercise the errno
// mapping without raising real signals.
type killFunc func(tgid, tid int, sig syscall.Signal) error

// Registry tracks pinned threads and hands out handles for them. The
// zero value is not usable; use NewRegistry or the package-level Default.
type Registry struct {
	mu sync.Mutex

	// configuration
	logf  LoggerFunc
	debug bool

	// kill is the delivery primitive. The delivery path reads it without
	// taking mu, so it must not be swapped while deliveries are in flight.
	kill killFunc

	// state
	nextID  uint64
	threads map[uint64]*Thread
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logf:    func(string, ...any) {},
		kill:    defaultKill,
		threads: make(map[uint64]*Thread),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var Default = NewRegistry()

// Pin locks the calling goroutine to its OS thread, records the kernel
// thread id, and returns a handle other goroutines can deliver signals
// through. name is for debugging output and may be empty. The goroutine
// must call Unpin on the returned handle, from itself, when it no longer
// needs to be signalable; if it returns while still pinned, the runtime
// destroys the OS thread and deliveries against the handle degrade to
// the already-exited success path.
func (r *Registry) Pin(name string) (*Thread, error) {
	runtime.LockOSThread()
	tid, err := gettid()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}

	r.mu.Lock()
	r.nextID++
	t := &Thread{id: r.nextID, name: name, reg: r}
	t.tid.Store(int64(tid))
	r.threads[t.id] = t
	debug, logf := r.debug, r.logf
	r.mu.Unlock()

	if debug {
		logf("threadsig: pin id=%d tid=%d name=%q", t.id, tid, name)
	}
	return t, nil
}

// Threads returns a snapshot of the currently registered handles.
func (r *Registry) Threads() []*Thread {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Thread, 0, len(r.threads))
	for _, t := range r.threads {
		out = append(out, t)
	}
	return out
}

// Reset abandons every registration, leaving stale handles resolving as
// already exited. It does not unlock the underlying OS threads, since
// that can only be done from their own goroutines. It is intended for
// tests and controlled reinitialization.
func (r *Registry) Reset() {
	r.mu.Lock()
	for _, t := range r.threads {
		t.tid.Store(0)
	}
	r.threads = make(map[uint64]*Thread)
	debug, logf := r.debug, r.logf
	r.mu.Unlock()

	if debug {
		logf("threadsig: reset all registrations")
	}
}

func (r *Registry) remove(t *Thread) {
	r.mu.Lock()
	delete(r.threads, t.id)
	debug, logf := r.debug, r.logf
	r.mu.Unlock()

	if debug {
		logf("threadsig: unpin id=%d name=%q", t.id, t.name)
	}
}
