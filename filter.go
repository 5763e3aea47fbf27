package dispatching

import (
	"context"
	"errors"
	"slices"

	"github.com/bjaus/dispatching/types"
)

// branch is one alternative of a Filter: a kind narrowing followed by a
// conjunction of guards over the narrowed value.
type branch[T any] struct {
	narrow func(types.Update) (T, bool)
	guards []Guard[T]
}

// match reports whether u has the branch's kind (narrowed) and whether all
// guards accepted it (ok). Guards short-circuit on the first failure.
func (b branch[T]) match(ctx context.Context, u types.Update) (v T, narrowed, ok bool) {
	v, narrowed = b.narrow(u)
	if !narrowed {
		return v, false, false
	}
	for _, g := range b.guards {
		if !g.Check(ctx, v) {
			return v, true, false
		}
	}
	return v, true, true
}

// Filter is a matcher over updates narrowed to T. It is an ordered list of
// branches; the first branch whose narrowing and guards all succeed wins and
// later branches are not evaluated.
//
// Filters are values: every method returns a new Filter and leaves the
// receiver untouched, so a common prefix can be shared between chains.
//
// Construction mistakes such as nil guards are recorded on the Filter and
// reported by Builder.Build.
type Filter[T any] struct {
	branches []branch[T]
	err      error
}

// NewFilter returns a Filter with a single branch that accepts every update
// narrow can project to T. Entry points in the updates package are built on
// it.
func NewFilter[T any](narrow func(types.Update) (T, bool)) *Filter[T] {
	f := &Filter[T]{branches: []branch[T]{{narrow: narrow}}}
	if narrow == nil {
		f.err = ErrNilGuard
	}
	return f
}

func (f *Filter[T]) clone() *Filter[T] {
	c := &Filter[T]{
		branches: slices.Clone(f.branches),
		err:      f.err,
	}
	last := len(c.branches) - 1
	c.branches[last].guards = slices.Clone(c.branches[last].guards)
	return c
}

func (f *Filter[T]) last() *branch[T] {
	return &f.branches[len(f.branches)-1]
}

func (f *Filter[T]) fail(err error) {
	f.err = errors.Join(f.err, err)
}

// With adds g to the last branch's conjunction.
func (f *Filter[T]) With(g Guard[T]) *Filter[T] {
	c := f.clone()
	if g == nil {
		c.fail(ErrNilGuard)
		return c
	}
	b := c.last()
	b.guards = append(b.guards, g)
	return c
}

// Refine narrows the last branch further: values for which pred is false
// are treated as the wrong kind, exactly as if narrowing had failed.
func (f *Filter[T]) Refine(pred func(T) bool) *Filter[T] {
	c := f.clone()
	if pred == nil {
		c.fail(ErrNilGuard)
		return c
	}
	b := c.last()
	narrow := b.narrow
	b.narrow = func(u types.Update) (T, bool) {
		v, ok := narrow(u)
		if !ok || !pred(v) {
			var zero T
			return zero, false
		}
		return v, true
	}
	return c
}

// OrWith starts a new branch with the same narrowing as the last branch
// and g as its only guard. The new branch is evaluated from the
// un-narrowed update, independent of earlier branches.
func (f *Filter[T]) OrWith(g Guard[T]) *Filter[T] {
	c := f.clone()
	if g == nil {
		c.fail(ErrNilGuard)
		return c
	}
	c.branches = append(c.branches, branch[T]{
		narrow: c.last().narrow,
		guards: []Guard[T]{g},
	})
	return c
}

// Or appends the branches of other. They are tried, in order, after every
// branch of f has failed.
func (f *Filter[T]) Or(other *Filter[T]) *Filter[T] {
	c := f.clone()
	if other == nil {
		c.fail(ErrNilGuard)
		return c
	}
	c.branches = append(c.branches, other.branches...)
	if other.err != nil {
		c.fail(other.err)
	}
	return c
}

// OrElse attaches a fallback action. It runs, with no update-derived
// arguments, when the update has the filter's kind but no branch accepted
// it; the chain's main action is then skipped. No guards can be added after
// OrElse.
func (f *Filter[T]) OrElse(fn func(ctx context.Context) error) *Fallback[T] {
	return &Fallback[T]{filter: f.clone(), fallback: fn}
}

// Do completes the chain with an action that takes no update-derived
// arguments.
func (f *Filter[T]) Do(fn func(ctx context.Context) error) *Chain {
	return newChain(f, nil, false, doAction[T](fn))
}

// By completes the chain with an action that receives the narrowed payload.
func (f *Filter[T]) By(fn func(ctx context.Context, payload T) error) *Chain {
	return newChain(f, nil, false, byAction(fn))
}

// ByCx completes the chain with an action that receives the payload wrapped
// in its session context.
func (f *Filter[T]) ByCx(fn func(ctx context.Context, cx UpdateWithCx[T]) error) *Chain {
	return newChain(f, nil, false, fn)
}

// match evaluates the branches in order. narrowed reports whether any
// branch accepted the update's kind.
func (f *Filter[T]) match(ctx context.Context, u types.Update) (v T, narrowed, ok bool) {
	for _, b := range f.branches {
		bv, bn, bok := b.match(ctx, u)
		if bok {
			return bv, true, true
		}
		narrowed = narrowed || bn
	}
	var zero T
	return zero, narrowed, false
}

// Fallback is a Filter with an OrElse action attached. Only the chain's
// main action can follow it.
type Fallback[T any] struct {
	filter   *Filter[T]
	fallback func(ctx context.Context) error
}

// Do completes the chain with an action that takes no update-derived
// arguments.
func (f *Fallback[T]) Do(fn func(ctx context.Context) error) *Chain {
	return newChain(f.filter, f.fallback, true, doAction[T](fn))
}

// By completes the chain with an action that receives the narrowed payload.
func (f *Fallback[T]) By(fn func(ctx context.Context, payload T) error) *Chain {
	return newChain(f.filter, f.fallback, true, byAction(fn))
}

// ByCx completes the chain with an action that receives the payload wrapped
// in its session context.
func (f *Fallback[T]) ByCx(fn func(ctx context.Context, cx UpdateWithCx[T]) error) *Chain {
	return newChain(f.filter, f.fallback, true, fn)
}
