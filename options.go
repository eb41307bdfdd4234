package threadsig

type LoggerFunc func(format string, args ...any)

type Option func(*Registry)

func WithLogger(l LoggerFunc) Option {
	return func(r *Registry) { r.logf = l }
}

func WithDebug(enabled bool) Option {
	return func(r *Registry) { r.debug = enabled }
}
