package dispatching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/bjaus/dispatching/types"
)

// ErrorHandler receives action failures as *ActionError. It is treated as
// infallible: a panicking error handler is handled according to the
// configured ErrorHandlerPolicy.
type ErrorHandler func(ctx context.Context, err error)

// Builder accumulates chains and the error handler, then freezes them into
// a Dispatcher.
//
// Usage:
//  1. Create a builder with NewBuilder
//  2. Register chains with Handle, in priority order
//  3. Set the error handler with ErrorHandler
//  4. Freeze with Build
type Builder struct {
	bot          Bot
	botName      string
	opts         options
	chains       []*Chain
	errorHandler ErrorHandler
	handlerCount int
}

// NewBuilder creates a Builder bound to a bot session. The bot is only
// handed to actions through UpdateWithCx; botName is used to recognise
// commands addressed to this bot.
//
// Example:
//
//	d, err := dispatching.NewBuilder(bot, "my_bot",
//	    dispatching.WithLogger(logger),
//	).
//	    Handle(updates.Message().WithCommand("start").ByCx(onStart)).
//	    Handle(updates.CallbackQuery().By(onButton)).
//	    ErrorHandler(func(ctx context.Context, err error) {
//	        logger.Error("handler failed", "error", err)
//	    }).
//	    Build()
func NewBuilder(bot Bot, botName string, opts ...Option) *Builder {
	b := &Builder{
		bot:     bot,
		botName: botName,
		opts:    defaultOptions(),
	}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Handle registers a chain. Chains are evaluated in registration order and
// the earliest chain that accepts an update wins.
func (b *Builder) Handle(c *Chain) *Builder {
	b.chains = append(b.chains, c)
	return b
}

// ErrorHandler registers the handler for action failures. Exactly one must
// be registered before Build.
func (b *Builder) ErrorHandler(fn ErrorHandler) *Builder {
	b.errorHandler = fn
	b.handlerCount++
	return b
}

// Build validates the configuration and freezes it into a Dispatcher.
// Every construction mistake is reported, joined into one error.
func (b *Builder) Build() (*Dispatcher, error) {
	var errs []error

	switch {
	case b.handlerCount > 1:
		errs = append(errs, ErrDuplicateErrorHandler)
	case b.errorHandler == nil:
		errs = append(errs, ErrNoErrorHandler)
	}

	routes := make([]route, 0, len(b.chains))
	for i, c := range b.chains {
		if c == nil {
			errs = append(errs, &ChainError{Index: i, Err: ErrNilChain})
			continue
		}
		if c.err != nil {
			errs = append(errs, &ChainError{Index: i, Chain: c.name, Err: c.err})
			continue
		}
		name := c.name
		if name == "" {
			name = fmt.Sprintf("chain-%d", i)
		}
		routes = append(routes, route{name: name, resolve: c.resolve})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Dispatcher{
		bot:          b.bot,
		botName:      b.botName,
		opts:         b.opts,
		routes:       routes,
		errorHandler: b.errorHandler,
	}, nil
}

// MustBuild is like Build but panics on misconfiguration.
func (b *Builder) MustBuild() *Dispatcher {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// route is a frozen, labelled chain.
type route struct {
	name    string
	resolve resolver
}

// Dispatcher routes updates to the first chain that accepts them.
//
// Its chain list never changes after Build, so DispatchOne may be called
// concurrently for different updates. State shared between actions must
// bring its own synchronization.
type Dispatcher struct {
	bot          Bot
	botName      string
	opts         options
	routes       []route
	errorHandler ErrorHandler
}

// Len returns the number of registered chains.
func (d *Dispatcher) Len() int {
	return len(d.routes)
}

// DispatchOne evaluates the chains in registration order against u and
// invokes at most one action: the main action of the first chain that
// accepts u, or that chain's fallback. An update no chain accepts is
// dropped. Action failures go to the error handler.
//
// Guards and actions may block; DispatchOne returns once the invoked action
// has completed. Pass a context with a deadline to bound suspending guards.
func (d *Dispatcher) DispatchOne(ctx context.Context, u types.Update) {
	env := envelope{
		bot:        d.bot,
		botName:    d.botName,
		dispatchID: uuid.New(),
		update:     u,
	}
	ctx = withBotName(ctx, d.botName)
	logger := d.opts.logger.With(
		slog.Int64("update_id", u.ID),
		slog.String("dispatch_id", env.dispatchID.String()),
	)

	for _, r := range d.routes {
		invoke, fallback, ok := r.resolve(ctx, env)
		if !ok {
			continue
		}
		logger.DebugContext(ctx, "update matched", "chain", r.name, "fallback", fallback)
		d.invoke(ctx, logger, r.name, u.ID, fallback, invoke)
		return
	}

	logger.DebugContext(ctx, "no chain matched update")
	d.opts.hooks.callOnNoMatch(ctx, u.ID)
}

func (d *Dispatcher) invoke(ctx context.Context, logger *slog.Logger, chain string, updateID int64, fallback bool, fn func(context.Context) error) {
	d.opts.hooks.callOnMatch(ctx, chain, updateID, fallback)

	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start)

	if err == nil {
		d.opts.hooks.callOnSuccess(ctx, chain, updateID, duration)
		return
	}

	d.opts.hooks.callOnFailure(ctx, chain, updateID, err, duration)
	logger.ErrorContext(ctx, "action failed", "chain", chain, "fallback", fallback, "error", err)

	d.handleError(ctx, logger, &ActionError{
		Chain:    chain,
		UpdateID: updateID,
		Fallback: fallback,
		Err:      err,
	})
}

// handleError runs the error handler under the configured policy.
func (d *Dispatcher) handleError(ctx context.Context, logger *slog.Logger, err error) {
	if d.opts.policy == PolicyLog {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "error handler panicked",
					slog.Any("panic", r),
					slog.Any("error", err),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
	}
	d.errorHandler(ctx, err)
}
