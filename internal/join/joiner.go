// Package join resolves the join fields of a widget schema against a
// document store. The contract is batch-at-a-time: each join field costs one
// store round trip for the entire batch, never one per record.
package join

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-widgets/pkg/schema"
	"github.com/goliatone/go-widgets/pkg/store"
)

// Option configures a Joiner.
type Option func(*Joiner)

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(j *Joiner) {
		j.logger = logger
	}
}

// Joiner is the reference schema.Joiner backed by a DocumentStore.
type Joiner struct {
	store  store.DocumentStore
	logger zerolog.Logger
}

// New constructs a Joiner reading related documents from st.
func New(st store.DocumentStore, options ...Option) *Joiner {
	j := &Joiner{
		store:  st,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(j)
	}
	return j
}

var _ schema.Joiner = (*Joiner)(nil)

// Join resolves every join field in fields for the whole batch. Ids are
// gathered across the batch, deduplicated, fetched in one FindByIDs call per
// join field, then distributed back as derived values: the related document
// for joinByOne, a slice of related documents in id order for joinByArray.
// A failed fetch fails the batch; no partial distribution happens.
func (j *Joiner) Join(ctx context.Context, fields []schema.Field, batch []schema.Joinable) error {
	if len(batch) == 0 {
		return nil
	}

	for _, field := range fields {
		if !field.IsJoin() {
			continue
		}
		if err := j.joinField(ctx, field, batch); err != nil {
			return err
		}
	}
	return nil
}

func (j *Joiner) joinField(ctx context.Context, field schema.Field, batch []schema.Joinable) error {
	idKey := schema.JoinIDField(field)

	var ids []string
	seen := make(map[string]struct{})
	collect := func(id string) {
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, rec := range batch {
		value, ok := rec.FieldValue(idKey)
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			collect(v)
		case []any:
			for _, item := range v {
				if id, ok := item.(string); ok {
					collect(id)
				}
			}
		case []string:
			for _, id := range v {
				collect(id)
			}
		}
	}

	if len(ids) == 0 {
		return nil
	}

	docs, err := j.store.FindByIDs(ctx, field.WithType, ids)
	if err != nil {
		return fmt.Errorf("join: field %q: find %q documents: %w", field.Name, field.WithType, err)
	}

	byID := make(map[string]store.Document, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	j.logger.Debug().
		Str("field", field.Name).
		Str("withType", field.WithType).
		Int("batch", len(batch)).
		Int("ids", len(ids)).
		Int("found", len(docs)).
		Msg("joined batch")

	for _, rec := range batch {
		value, _ := rec.FieldValue(idKey)
		switch field.Type {
		case schema.TypeJoinByOne:
			if id, ok := value.(string); ok {
				if doc, ok := byID[id]; ok {
					rec.SetDerived(field.Name, doc)
				}
			}
		case schema.TypeJoinByArray:
			related := make([]store.Document, 0)
			appendID := func(id string) {
				if doc, ok := byID[id]; ok {
					related = append(related, doc)
				}
			}
			switch v := value.(type) {
			case []any:
				for _, item := range v {
					if id, ok := item.(string); ok {
						appendID(id)
					}
				}
			case []string:
				for _, id := range v {
					appendID(id)
				}
			}
			rec.SetDerived(field.Name, related)
		}
	}
	return nil
}
