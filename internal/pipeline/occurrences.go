package pipeline

import (
	"context"

	"github.com/goliatone/go-widgets/pkg/store"
)

// ListOccurrences scans every persisted document and reports each nested
// widget occurrence of typeName as a (slug, dotPath) pair. Read-only;
// intended for operational debugging, not the request-serving hot path.
func ListOccurrences(ctx context.Context, st store.DocumentStore, typeName string, visit func(slug, path string) error) error {
	return st.Each(ctx, func(doc store.Document) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return WalkWidgets(doc.Body, func(path string, item map[string]any) error {
			if item["type"] != typeName {
				return nil
			}
			return visit(doc.Slug, path)
		})
	})
}
