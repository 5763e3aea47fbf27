package dispatching

import (
	"context"
	"time"
)

// OnMatchFunc is called after a chain accepts an update, just before its
// action runs. fallback is true when the action is the chain's OrElse.
type OnMatchFunc func(ctx context.Context, chain string, updateID int64, fallback bool)

// OnSuccessFunc is called after an action completes successfully.
type OnSuccessFunc func(ctx context.Context, chain string, updateID int64, duration time.Duration)

// OnFailureFunc is called after an action fails, before the error handler.
type OnFailureFunc func(ctx context.Context, chain string, updateID int64, err error, duration time.Duration)

// OnNoMatchFunc is called when no chain accepts an update. The update is
// dropped; the error handler is not involved.
type OnNoMatchFunc func(ctx context.Context, updateID int64)

// hooks holds all configured hook functions.
type hooks struct {
	onMatch   []OnMatchFunc
	onSuccess []OnSuccessFunc
	onFailure []OnFailureFunc
	onNoMatch []OnNoMatchFunc
}

// WithOnMatch adds a hook called just before a matched chain's action runs.
// Multiple hooks are called in order.
//
// Example:
//
//	dispatching.WithOnMatch(func(ctx context.Context, chain string, id int64, fallback bool) {
//	    logger.Debug("dispatching update", "chain", chain, "update_id", id)
//	})
func WithOnMatch(fn OnMatchFunc) Option {
	return func(o *options) {
		o.hooks.onMatch = append(o.hooks.onMatch, fn)
	}
}

// WithOnSuccess adds a hook called after an action completes successfully.
// Multiple hooks are called in order.
//
// Example:
//
//	dispatching.WithOnSuccess(func(ctx context.Context, chain string, id int64, d time.Duration) {
//	    metrics.Timing("dispatch.success", d, "chain:"+chain)
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(o *options) {
		o.hooks.onSuccess = append(o.hooks.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called after an action fails.
// Multiple hooks are called in order.
func WithOnFailure(fn OnFailureFunc) Option {
	return func(o *options) {
		o.hooks.onFailure = append(o.hooks.onFailure, fn)
	}
}

// WithOnNoMatch adds a hook called when an update matches no chain.
// Multiple hooks are called in order.
//
// Example:
//
//	dispatching.WithOnNoMatch(func(ctx context.Context, id int64) {
//	    metrics.Incr("dispatch.unmatched")
//	})
func WithOnNoMatch(fn OnNoMatchFunc) Option {
	return func(o *options) {
		o.hooks.onNoMatch = append(o.hooks.onNoMatch, fn)
	}
}

func (h *hooks) callOnMatch(ctx context.Context, chain string, updateID int64, fallback bool) {
	for _, fn := range h.onMatch {
		fn(ctx, chain, updateID, fallback)
	}
}

func (h *hooks) callOnSuccess(ctx context.Context, chain string, updateID int64, d time.Duration) {
	for _, fn := range h.onSuccess {
		fn(ctx, chain, updateID, d)
	}
}

func (h *hooks) callOnFailure(ctx context.Context, chain string, updateID int64, err error, d time.Duration) {
	for _, fn := range h.onFailure {
		fn(ctx, chain, updateID, err, d)
	}
}

func (h *hooks) callOnNoMatch(ctx context.Context, updateID int64) {
	for _, fn := range h.onNoMatch {
		fn(ctx, updateID)
	}
}
