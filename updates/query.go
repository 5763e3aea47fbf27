package updates

import (
	"github.com/bjaus/dispatching"
	"github.com/bjaus/dispatching/types"
)

// CallbackQueryFilter is a filter over callback queries.
type CallbackQueryFilter struct {
	*dispatching.Filter[types.CallbackQuery]
}

// With adds a guard over the whole query.
func (f *CallbackQueryFilter) With(g dispatching.Guard[types.CallbackQuery]) *CallbackQueryFilter {
	return &CallbackQueryFilter{Filter: f.Filter.With(g)}
}

// WithData adds a guard over the callback data. Queries without data fail
// it.
func (f *CallbackQueryFilter) WithData(g dispatching.Guard[string]) *CallbackQueryFilter {
	return f.With(dispatching.Field(callbackData, g))
}

// WithFromID adds a guard over the identifier of the user who pressed the
// button.
func (f *CallbackQueryFilter) WithFromID(g dispatching.Guard[int64]) *CallbackQueryFilter {
	return f.With(dispatching.Field(callbackFromID, g))
}

// OrWithData starts a new callback query branch guarded on the data.
func (f *CallbackQueryFilter) OrWithData(g dispatching.Guard[string]) *CallbackQueryFilter {
	return &CallbackQueryFilter{Filter: f.OrWith(dispatching.Field(callbackData, g))}
}

// Or tries other after every branch of f has failed.
func (f *CallbackQueryFilter) Or(other *CallbackQueryFilter) *CallbackQueryFilter {
	var inner *dispatching.Filter[types.CallbackQuery]
	if other != nil {
		inner = other.Filter
	}
	return &CallbackQueryFilter{Filter: f.Filter.Or(inner)}
}

func callbackData(q types.CallbackQuery) (string, bool) {
	return q.Data, q.Data != ""
}

func callbackFromID(q types.CallbackQuery) (int64, bool) {
	return q.From.ID, true
}

// InlineQueryFilter is a filter over inline queries.
type InlineQueryFilter struct {
	*dispatching.Filter[types.InlineQuery]
}

// With adds a guard over the whole query.
func (f *InlineQueryFilter) With(g dispatching.Guard[types.InlineQuery]) *InlineQueryFilter {
	return &InlineQueryFilter{Filter: f.Filter.With(g)}
}

// WithQuery adds a guard over the query text, which may be empty.
func (f *InlineQueryFilter) WithQuery(g dispatching.Guard[string]) *InlineQueryFilter {
	return f.With(dispatching.Field(inlineQueryText, g))
}

// WithFromID adds a guard over the identifier of the querying user.
func (f *InlineQueryFilter) WithFromID(g dispatching.Guard[int64]) *InlineQueryFilter {
	return f.With(dispatching.Field(inlineQueryFromID, g))
}

// OrWithQuery starts a new inline query branch guarded on the query text.
func (f *InlineQueryFilter) OrWithQuery(g dispatching.Guard[string]) *InlineQueryFilter {
	return &InlineQueryFilter{Filter: f.OrWith(dispatching.Field(inlineQueryText, g))}
}

func inlineQueryText(q types.InlineQuery) (string, bool) {
	return q.Query, true
}

func inlineQueryFromID(q types.InlineQuery) (int64, bool) {
	return q.From.ID, true
}
