package widget

import (
	"context"
	"errors"
	"testing"
)

func loadBatch(n int, virtual bool) []*Record {
	batch := make([]*Record, 0, n)
	for i := 0; i < n; i++ {
		rec := NewRecord("fancy-article")
		rec.Virtual = virtual
		batch = append(batch, rec)
	}
	return batch
}

func TestLoad_JoinRunsOncePerBatch(t *testing.T) {
	joiner := &captureJoiner{}
	typ := MustNew(testConfig(), WithJoiner(joiner))

	batch := loadBatch(7, false)
	if err := typ.Load(context.Background(), editorRequest(), batch); err != nil {
		t.Fatalf("load: %v", err)
	}

	if joiner.calls != 1 {
		t.Fatalf("expected exactly one join call for the batch, got %d", joiner.calls)
	}
	if len(joiner.batches[0]) != 7 {
		t.Fatalf("join must receive the whole batch, got %d records", len(joiner.batches[0]))
	}
}

func TestLoad_EscalatesScene(t *testing.T) {
	cfg := testConfig()
	cfg.Scene = "user"
	typ := MustNew(cfg)

	req := &Request{}
	if err := typ.Load(context.Background(), req, loadBatch(1, false)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Scene != "user" {
		t.Fatalf("expected scene escalation, got %q", req.Scene)
	}
}

func TestLoad_VirtualBatchRoutesToReplay(t *testing.T) {
	replayer := &captureReplayer{}
	typ := MustNew(testConfig(), WithReplayer(replayer))

	if err := typ.Load(context.Background(), editorRequest(), loadBatch(3, true)); err != nil {
		t.Fatalf("load: %v", err)
	}

	if replayer.calls != 1 {
		t.Fatalf("expected one replay pass, got %d", replayer.calls)
	}
	if !replayer.opts[0].SkipJoins {
		t.Fatalf("replay must run with joins disabled; they already happened")
	}
}

func TestLoad_PersistedBatchSkipsReplay(t *testing.T) {
	replayer := &captureReplayer{}
	typ := MustNew(testConfig(), WithReplayer(replayer))

	if err := typ.Load(context.Background(), editorRequest(), loadBatch(3, false)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if replayer.calls != 0 {
		t.Fatalf("persisted batches must not replay, got %d calls", replayer.calls)
	}
}

func TestLoad_RejectsMixedBatch(t *testing.T) {
	typ := MustNew(testConfig())

	batch := loadBatch(2, true)
	batch[1].Virtual = false
	err := typ.Load(context.Background(), editorRequest(), batch)
	if !errors.Is(err, ErrMixedBatch) {
		t.Fatalf("expected ErrMixedBatch, got %v", err)
	}
}

func TestLoad_EmptyBatchIsNoop(t *testing.T) {
	joiner := &captureJoiner{}
	typ := MustNew(testConfig(), WithJoiner(joiner))

	if err := typ.Load(context.Background(), editorRequest(), nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if joiner.calls != 0 {
		t.Fatalf("empty batch must not join")
	}
}

func TestLoad_JoinFailurePropagates(t *testing.T) {
	boom := errors.New("store down")
	typ := MustNew(testConfig(), WithJoiner(&captureJoiner{err: boom}))

	err := typ.Load(context.Background(), editorRequest(), loadBatch(2, false))
	if !errors.Is(err, boom) {
		t.Fatalf("expected join failure to propagate, got %v", err)
	}
}

func TestLoad_ReplayFailurePropagates(t *testing.T) {
	boom := errors.New("replay failed")
	typ := MustNew(testConfig(), WithReplayer(&captureReplayer{err: boom}))

	err := typ.Load(context.Background(), editorRequest(), loadBatch(2, true))
	if !errors.Is(err, boom) {
		t.Fatalf("expected replay failure to propagate, got %v", err)
	}
}
