package widget

import (
	"context"
	"fmt"

	"github.com/goliatone/go-widgets/pkg/schema"
)

// ReplayOptions parameterize a nested-content replay pass.
type ReplayOptions struct {
	// SkipJoins disables the join pass over the batch itself, for callers
	// that already ran joins before replaying.
	SkipJoins bool
}

// Replayer re-runs the generic nested-content loading pipeline directly
// against a widget batch. Virtual widgets never went through document
// loading, so widgets inside their sub-areas are still unloaded; Replay
// substitutes the widget batch for documents and descends into them.
type Replayer interface {
	Replay(ctx context.Context, req *Request, batch []*Record, opts ReplayOptions) error
}

// Load enriches a batch of records in place with derived data. Precondition:
// a batch is homogeneous — callers must not mix virtual and persisted
// widgets; mixed batches are rejected with ErrMixedBatch.
//
// The steps, in order: escalate the request scene when the type declares
// one; run the join primitive exactly once for the entire batch — one round
// trip serves every widget of this type in the batch; for virtual batches,
// replay the nested-content pipeline with a second join pass disabled (joins
// already ran, and widget type values are not document types). Persisted
// batches need no replay: the document pipeline already loaded their nested
// content when the owning documents loaded.
//
// Any join or replay failure propagates whole-batch; there are no retries
// and no partial-success state.
func (t *Type) Load(ctx context.Context, req *Request, batch []*Record) error {
	req.EscalateScene(t.scene)

	if len(batch) == 0 {
		return nil
	}
	if err := assertHomogeneous(batch); err != nil {
		return err
	}

	if t.joiner != nil {
		joinables := make([]schema.Joinable, len(batch))
		for i, rec := range batch {
			joinables[i] = rec
		}
		if err := t.joiner.Join(ctx, t.schema, joinables); err != nil {
			return fmt.Errorf("widget %q: join batch: %w", t.name, err)
		}
	}

	t.logger.Debug().
		Str("widget", t.name).
		Int("batch", len(batch)).
		Bool("virtual", batch[0].Virtual).
		Msg("loaded widget batch")

	if !batch[0].Virtual {
		return nil
	}
	if t.replayer == nil {
		return nil
	}
	if err := t.replayer.Replay(ctx, req, batch, ReplayOptions{SkipJoins: true}); err != nil {
		return fmt.Errorf("widget %q: replay nested content: %w", t.name, err)
	}
	return nil
}

// JoinBatch runs only the join step over a batch, once for the whole array.
// It backs replay passes that need joins without the virtual-batch routing
// of Load.
func (t *Type) JoinBatch(ctx context.Context, batch []*Record) error {
	if t.joiner == nil || len(batch) == 0 {
		return nil
	}
	joinables := make([]schema.Joinable, len(batch))
	for i, rec := range batch {
		joinables[i] = rec
	}
	if err := t.joiner.Join(ctx, t.schema, joinables); err != nil {
		return fmt.Errorf("widget %q: join batch: %w", t.name, err)
	}
	return nil
}

func assertHomogeneous(batch []*Record) error {
	virtual := batch[0].Virtual
	for _, rec := range batch[1:] {
		if rec.Virtual != virtual {
			return ErrMixedBatch
		}
	}
	return nil
}
