package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-widgets/pkg/store"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "widgets.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutFindRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	docs := []store.Document{
		{ID: "d1", Slug: "beta", Type: "article", Body: map[string]any{"title": "Beta"}},
		{ID: "d2", Slug: "alpha", Type: "article", Body: map[string]any{"title": "Alpha"}},
		{ID: "d3", Slug: "team", Type: "person", Body: map[string]any{"name": "Jane"}},
	}
	for _, doc := range docs {
		if err := s.Put(ctx, doc); err != nil {
			t.Fatalf("put %q: %v", doc.ID, err)
		}
	}

	found, err := s.FindByIDs(ctx, "article", []string{"d2", "missing", "d3", "d1"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	got := make([]string, len(found))
	for i, doc := range found {
		got[i] = doc.ID
	}
	if diff := cmp.Diff([]string{"d2", "d1"}, got); diff != "" {
		t.Fatalf("id order mismatch (-want +got):\n%s", diff)
	}
	if found[0].Body["title"] != "Alpha" {
		t.Fatalf("body round trip lost: %v", found[0].Body)
	}
}

func TestPut_ReplacesByID(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, store.Document{ID: "d1", Slug: "beta", Type: "article", Body: map[string]any{"v": float64(1)}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, store.Document{ID: "d1", Slug: "beta", Type: "article", Body: map[string]any{"v": float64(2)}}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	found, err := s.FindByIDs(ctx, "article", []string{"d1"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 1 || found[0].Body["v"] != float64(2) {
		t.Fatalf("replace lost: %v", found)
	}
}

func TestEach_SlugOrder(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, doc := range []store.Document{
		{ID: "d1", Slug: "beta", Type: "article", Body: map[string]any{}},
		{ID: "d2", Slug: "alpha", Type: "article", Body: map[string]any{}},
	} {
		if err := s.Put(ctx, doc); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	var slugs []string
	err := s.Each(ctx, func(doc store.Document) error {
		slugs = append(slugs, doc.Slug)
		return nil
	})
	if err != nil {
		t.Fatalf("each: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, slugs); diff != "" {
		t.Fatalf("slug order mismatch (-want +got):\n%s", diff)
	}
}

func TestFindByIDs_EmptyIDs(t *testing.T) {
	s := openStore(t)
	found, err := s.FindByIDs(context.Background(), "article", nil)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("want no documents, got %v", found)
	}
}
