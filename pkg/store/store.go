// Package store defines the document persistence contract the widget
// pipeline consumes. The module never writes documents; joins read related
// documents in bulk and the introspection task iterates the full corpus.
// In-memory and SQLite implementations live under internal/store.
package store

import "context"

// Document is a persisted content document. Body holds the full document
// payload, including nested areas whose items are widget records.
type Document struct {
	ID   string
	Slug string
	Type string
	Body map[string]any
}

// DocumentStore provides the two read paths the pipeline needs: bulk by-id
// lookup for joins and full iteration for introspection. Implementations
// must honour ctx cancellation on both.
type DocumentStore interface {
	// FindByIDs returns the documents of docType matching ids. Missing ids
	// are skipped, not errors; result order follows ids.
	FindByIDs(ctx context.Context, docType string, ids []string) ([]Document, error)

	// Each visits every persisted document. Iteration stops at the first
	// error returned by visit, which is propagated to the caller.
	Each(ctx context.Context, visit func(Document) error) error
}
