// Package dispatching routes bot platform updates (messages, callback
// queries, ...) to the first matching handler chain.
//
// The package never performs I/O. The host acquires updates (long polling,
// webhooks), parses them into types.Update, and hands them to
// Dispatcher.DispatchOne one at a time.
//
// # Quick Start
//
//	d, err := dispatching.NewBuilder(bot, "my_bot").
//	    Handle(updates.Message().WithCommand("start").ByCx(
//	        func(ctx context.Context, cx dispatching.UpdateWithCx[types.Message]) error {
//	            return dispatching.Reply(ctx, cx, "hello!")
//	        })).
//	    Handle(updates.CallbackQuery().By(
//	        func(ctx context.Context, q types.CallbackQuery) error {
//	            return answer(ctx, q)
//	        })).
//	    ErrorHandler(func(ctx context.Context, err error) {
//	        logger.Error("handler failed", "error", err)
//	    }).
//	    Build()
//
//	d.DispatchOne(ctx, update)
//
// # Chains
//
// A chain is a matcher followed by a terminal action. Chains are evaluated
// in registration order and the first chain that accepts an update runs its
// action; no other chain is consulted. At most one action runs per update.
//
// # Matchers
//
// Matchers start at an entry point in the updates package, which narrows
// the update to a payload kind, and are refined with guards:
//
//   - With / WithText / WithChatID: conjunction. Guards run left to right
//     and stop at the first failure.
//   - OrWith / OrWithText / ...: alternation. Starts a new branch of the same
//     kind, evaluated from the un-narrowed update. The first branch that
//     succeeds wins and later branches are not evaluated.
//   - Or: alternation with another matcher of the same payload type.
//   - OrElse: fallback. When the update has the matcher's kind but no branch
//     accepts it, the fallback runs instead of the main action.
//
// A field guard applied to an update of another kind is a plain failure,
// never an error. An update that no chain accepts is dropped silently.
//
// # Guards
//
// A Guard answers either immediately (Sync, GuardFunc) or after a wait
// (Async, AsyncGuardFunc). Both kinds mix freely within one chain:
//
//	updates.Message().
//	    WithText(dispatching.Sync(func(text string) bool { return text != "" })).
//	    WithChatID(dispatching.Async(func(ctx context.Context, id int64) <-chan bool {
//	        ch := make(chan bool, 1)
//	        go func() { ch <- acl.Allowed(ctx, id) }()
//	        return ch
//	    }))
//
// Guards compose with And, Or and Not; Equals and Field cover the common
// cases.
//
// # Actions
//
// The action's parameter shape is chosen by the method that completes the
// chain and is checked by the compiler:
//
//   - Do(func(ctx) error): no update-derived arguments
//   - By(func(ctx, payload T) error): the narrowed payload
//   - ByCx(func(ctx, UpdateWithCx[T]) error): the payload with its session
//
// # Errors
//
// Action failures are wrapped in *ActionError and passed to the single
// error handler. The error handler is treated as infallible; if it panics,
// the panic propagates (PolicyRepanic, the default) or is logged
// (PolicyLog). Misconfiguration such as a nil guard, a nil action or a
// missing error handler is reported by Build before any dispatch happens.
//
// # Hooks
//
// Hooks provide observability without coupling to a metrics system:
//
//   - WithOnMatch: called just before an action runs
//   - WithOnSuccess: called after an action succeeds
//   - WithOnFailure: called after an action fails
//   - WithOnNoMatch: called when an update is dropped
//
// # Thread Safety
//
// A Dispatcher is immutable and safe for concurrent use. State shared
// between guards or actions must bring its own synchronization.
package dispatching
