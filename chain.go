package dispatching

import (
	"context"
	"errors"
)

// Chain pairs a matcher with its terminal action. It is immutable once
// built; register it with Builder.Handle.
type Chain struct {
	name    string
	resolve resolver
	err     error
}

// resolver evaluates a chain's matcher against one update. When the chain
// accepts the update it returns the action to invoke, already bound to its
// injected arguments.
type resolver func(ctx context.Context, env envelope) (invoke func(context.Context) error, fallback, ok bool)

// Named returns a copy of the chain labelled name in logs and hooks.
// Unnamed chains are labelled chain-<index>.
func (c *Chain) Named(name string) *Chain {
	cp := *c
	cp.name = name
	return &cp
}

func newChain[T any](
	f *Filter[T],
	fallback func(context.Context) error,
	hasFallback bool,
	action func(context.Context, UpdateWithCx[T]) error,
) *Chain {
	err := f.err
	if action == nil {
		err = errors.Join(err, ErrNilAction)
	}
	if hasFallback && fallback == nil {
		err = errors.Join(err, ErrNilAction)
	}

	return &Chain{
		err: err,
		resolve: func(ctx context.Context, env envelope) (func(context.Context) error, bool, bool) {
			v, narrowed, ok := f.match(ctx, env.update)
			switch {
			case ok:
				cx := cxFor(env, v)
				return func(ctx context.Context) error { return action(ctx, cx) }, false, true
			case narrowed && fallback != nil:
				return fallback, true, true
			}
			return nil, false, false
		},
	}
}

func doAction[T any](fn func(context.Context) error) func(context.Context, UpdateWithCx[T]) error {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, _ UpdateWithCx[T]) error {
		return fn(ctx)
	}
}

func byAction[T any](fn func(context.Context, T) error) func(context.Context, UpdateWithCx[T]) error {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, cx UpdateWithCx[T]) error {
		return fn(ctx, cx.Update)
	}
}

