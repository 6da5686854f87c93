// Package sqlite provides a SQLite-backed DocumentStore. Documents persist
// as JSON bodies keyed by id, with slug and type columns for lookup.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-widgets/pkg/store"
)

// Store is a DocumentStore over a SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates a store at path, creating the schema when missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			id   TEXT PRIMARY KEY,
			slug TEXT NOT NULL,
			type TEXT NOT NULL,
			body TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(type);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_slug ON documents(slug);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ store.DocumentStore = (*Store)(nil)

// Put inserts or replaces a document.
func (s *Store) Put(ctx context.Context, doc store.Document) error {
	body, err := json.Marshal(doc.Body)
	if err != nil {
		return fmt.Errorf("sqlite: marshal document %q: %w", doc.ID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (id, slug, type, body) VALUES (?, ?, ?, ?)`,
		doc.ID, doc.Slug, doc.Type, string(body))
	if err != nil {
		return fmt.Errorf("sqlite: put document %q: %w", doc.ID, err)
	}
	return nil
}

// FindByIDs returns documents of docType matching ids, in ids order.
func (s *Store) FindByIDs(ctx context.Context, docType string, ids []string) ([]store.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(ids)+1)
	args = append(args, docType)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slug, type, body FROM documents WHERE type = ? AND id IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query documents: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]store.Document, len(ids))
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		byID[doc.ID] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate documents: %w", err)
	}

	found := make([]store.Document, 0, len(byID))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			found = append(found, doc)
		}
	}
	return found, nil
}

// Each visits every document in slug order.
func (s *Store) Each(ctx context.Context, visit func(store.Document) error) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slug, type, body FROM documents ORDER BY slug`)
	if err != nil {
		return fmt.Errorf("sqlite: query documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return err
		}
		if err := visit(doc); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: iterate documents: %w", err)
	}
	return nil
}

func scanDocument(rows *sql.Rows) (store.Document, error) {
	var doc store.Document
	var body string
	if err := rows.Scan(&doc.ID, &doc.Slug, &doc.Type, &body); err != nil {
		return store.Document{}, fmt.Errorf("sqlite: scan document: %w", err)
	}
	if err := json.Unmarshal([]byte(body), &doc.Body); err != nil {
		return store.Document{}, fmt.Errorf("sqlite: decode document %q: %w", doc.ID, err)
	}
	return doc, nil
}
