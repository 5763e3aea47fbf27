package dispatching

import "log/slog"

// ErrorHandlerPolicy decides what happens when the error handler itself
// panics.
type ErrorHandlerPolicy int

const (
	// PolicyRepanic lets the panic propagate out of DispatchOne. This is
	// the default: a failing error handler is a fatal condition.
	PolicyRepanic ErrorHandlerPolicy = iota

	// PolicyLog recovers the panic, logs it at error level and abandons
	// only the current dispatch.
	PolicyLog
)

// Option configures a Builder.
type Option func(*options)

type options struct {
	logger *slog.Logger
	policy ErrorHandlerPolicy
	hooks  hooks
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
		policy: PolicyRepanic,
	}
}

// WithLogger sets the logger used for dispatch diagnostics. By default
// nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithErrorHandlerPolicy sets how a panicking error handler is treated.
func WithErrorHandlerPolicy(p ErrorHandlerPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}
