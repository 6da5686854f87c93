// Package memory provides an in-memory DocumentStore for tests and
// embedded usage.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/goliatone/go-widgets/pkg/store"
)

// Store keeps documents in memory, keyed by id. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	docs map[string]store.Document
}

// New returns an empty store.
func New() *Store {
	return &Store{docs: make(map[string]store.Document)}
}

var _ store.DocumentStore = (*Store)(nil)

// Put inserts or replaces a document.
func (s *Store) Put(doc store.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

// FindByIDs returns documents of docType matching ids, in ids order.
// Missing ids are skipped.
func (s *Store) FindByIDs(ctx context.Context, docType string, ids []string) ([]store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]store.Document, 0, len(ids))
	for _, id := range ids {
		doc, ok := s.docs[id]
		if !ok || doc.Type != docType {
			continue
		}
		found = append(found, doc)
	}
	return found, nil
}

// Each visits every document in slug order.
func (s *Store) Each(ctx context.Context, visit func(store.Document) error) error {
	s.mu.RLock()
	docs := make([]store.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	s.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool { return docs[i].Slug < docs[j].Slug })

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := visit(doc); err != nil {
			return err
		}
	}
	return nil
}
