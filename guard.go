package dispatching

import "context"

// Guard decides whether a matcher branch accepts a value. A false result is
// ordinary control flow: evaluation moves on to the next branch or chain.
//
// Guards come in two flavors that mix freely within one chain:
//
//   - GuardFunc answers immediately.
//   - AsyncGuardFunc hands back a channel that yields the answer later.
//
// Guards must not mutate the value they inspect.
type Guard[T any] interface {
	Check(ctx context.Context, v T) bool
}

// GuardFunc is an immediate guard.
type GuardFunc[T any] func(v T) bool

// Check implements the Guard interface.
func (f GuardFunc[T]) Check(_ context.Context, v T) bool {
	return f(v)
}

// AsyncGuardFunc is a suspending guard. Check waits until the returned
// channel delivers the answer. A channel closed without a value, or a
// context that ends first, counts as a failed guard.
type AsyncGuardFunc[T any] func(ctx context.Context, v T) <-chan bool

// Check implements the Guard interface.
func (f AsyncGuardFunc[T]) Check(ctx context.Context, v T) bool {
	select {
	case ok := <-f(ctx, v):
		return ok
	case <-ctx.Done():
		return false
	}
}

// Sync returns an immediate guard for fn.
//
//	updates.Message().WithText(dispatching.Sync(func(text string) bool {
//	    return text == "ping"
//	}))
func Sync[T any](fn func(v T) bool) Guard[T] {
	if fn == nil {
		return nil
	}
	return GuardFunc[T](fn)
}

// Async returns a suspending guard for fn.
//
//	updates.Message().WithChatID(dispatching.Async(func(ctx context.Context, id int64) <-chan bool {
//	    ch := make(chan bool, 1)
//	    go func() { ch <- acl.Allowed(ctx, id) }()
//	    return ch
//	}))
func Async[T any](fn func(ctx context.Context, v T) <-chan bool) Guard[T] {
	if fn == nil {
		return nil
	}
	return AsyncGuardFunc[T](fn)
}

// Equals returns a guard that matches values equal to want.
func Equals[T comparable](want T) Guard[T] {
	return GuardFunc[T](func(v T) bool { return v == want })
}

// Field returns a guard over T that projects a field with get and checks it
// with g. A field that get reports as absent fails the guard.
func Field[T, F any](get func(T) (F, bool), g Guard[F]) Guard[T] {
	if get == nil || g == nil {
		return nil
	}
	return field[T, F]{get: get, g: g}
}

type field[T, F any] struct {
	get func(T) (F, bool)
	g   Guard[F]
}

func (f field[T, F]) Check(ctx context.Context, v T) bool {
	fv, ok := f.get(v)
	return ok && f.g.Check(ctx, fv)
}

// And returns a guard that matches when all guards match. Guards are
// checked left to right and evaluation stops at the first failure.
func And[T any](gs ...Guard[T]) Guard[T] {
	return and[T]{gs: gs}
}

type and[T any] struct {
	gs []Guard[T]
}

func (a and[T]) Check(ctx context.Context, v T) bool {
	for _, g := range a.gs {
		if !g.Check(ctx, v) {
			return false
		}
	}
	return true
}

// Or returns a guard that matches when any guard matches. Guards are
// checked left to right and evaluation stops at the first success.
func Or[T any](gs ...Guard[T]) Guard[T] {
	return or[T]{gs: gs}
}

type or[T any] struct {
	gs []Guard[T]
}

func (o or[T]) Check(ctx context.Context, v T) bool {
	for _, g := range o.gs {
		if g.Check(ctx, v) {
			return true
		}
	}
	return false
}

// Not inverts g.
func Not[T any](g Guard[T]) Guard[T] {
	if g == nil {
		return nil
	}
	return not[T]{g: g}
}

type not[T any] struct {
	g Guard[T]
}

func (n not[T]) Check(ctx context.Context, v T) bool {
	return !n.g.Check(ctx, v)
}
