package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-widgets/pkg/widget"
)

// Option configures a Replayer.
type Option func(*Replayer)

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Replayer) {
		r.logger = logger
	}
}

// Replayer re-runs the generic document-loading pipeline over a widget
// batch: virtual widgets never passed through document loading, so widgets
// inside their sub-areas are still raw maps. Replay promotes those maps to
// records and loads them through their own widget types, recursing as deep
// as the content nests. Types absent from the registry are promoted but not
// loaded.
type Replayer struct {
	types  *widget.Registry
	logger zerolog.Logger
}

// NewReplayer constructs a Replayer resolving nested widget types from
// types.
func NewReplayer(types *widget.Registry, options ...Option) *Replayer {
	r := &Replayer{
		types:  types,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var _ widget.Replayer = (*Replayer)(nil)

// Replay enriches the batch's nested content in place. When opts.SkipJoins
// is set, the join pass over the batch itself is skipped — the caller
// already ran it, and re-running joins against widget type values would be
// wrong since those are not document types. Nested widgets always get their
// own full Load, joins included, grouped per type so each nested type costs
// one join pass for the whole batch.
func (r *Replayer) Replay(ctx context.Context, req *widget.Request, batch []*widget.Record, opts widget.ReplayOptions) error {
	if len(batch) == 0 {
		return nil
	}

	if !opts.SkipJoins {
		if t, ok := r.types.Get(batch[0].TypeName); ok {
			if err := t.JoinBatch(ctx, batch); err != nil {
				return fmt.Errorf("pipeline: join replayed batch: %w", err)
			}
		}
	}

	grouped := make(map[string][]*widget.Record)
	for _, rec := range batch {
		r.promoteNested(rec, grouped)
	}
	if len(grouped) == 0 {
		return nil
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t, ok := r.types.Get(name)
		if !ok {
			r.logger.Debug().
				Str("widget", name).
				Int("batch", len(grouped[name])).
				Msg("skipping unregistered nested widget type")
			continue
		}
		if err := t.Load(ctx, req, grouped[name]); err != nil {
			return fmt.Errorf("pipeline: load nested %q widgets: %w", name, err)
		}
	}
	return nil
}

// promoteNested swaps widget-shaped maps inside rec's area fields for
// records and groups them by type for batched loading. The records are
// inserted before loading: Load mutates them in place through the shared
// pointers.
func (r *Replayer) promoteNested(rec *widget.Record, grouped map[string][]*widget.Record) {
	keys := make([]string, 0, len(rec.Fields))
	for key := range rec.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		r.promoteValue(rec, rec.Fields[key], grouped)
	}
}

func (r *Replayer) promoteValue(parent *widget.Record, value any, grouped map[string][]*widget.Record) {
	switch v := value.(type) {
	case map[string]any:
		if v["metaType"] == "area" {
			items, _ := v["items"].([]any)
			for i, item := range items {
				entry, ok := item.(map[string]any)
				if !ok || entry["metaType"] != widget.MetaType {
					continue
				}
				nested := widget.FromMap(entry)
				nested.Virtual = parent.Virtual
				items[i] = nested
				grouped[nested.TypeName] = append(grouped[nested.TypeName], nested)
			}
			return
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			r.promoteValue(parent, v[key], grouped)
		}
	case []any:
		for _, item := range v {
			r.promoteValue(parent, item, grouped)
		}
	}
}
