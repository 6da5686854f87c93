// Package widgets exposes the widget-type pipeline from the module root:
// schema-described content blocks with sanitized writes, batched enrichment
// on reads, permission-scoped editor metadata, and leak-safe client
// payloads. The root package re-exports the common types and wires the
// reference collaborators so most callers need a single import.
package widgets

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-widgets/internal/join"
	"github.com/goliatone/go-widgets/internal/pipeline"
	"github.com/goliatone/go-widgets/pkg/permission"
	"github.com/goliatone/go-widgets/pkg/schema"
	"github.com/goliatone/go-widgets/pkg/store"
	"github.com/goliatone/go-widgets/pkg/widget"
)

// Type is one widget type's behaviour set.
type Type = widget.Type

// Config is the declarative widget type configuration surface.
type Config = widget.Config

// Record is a single widget instance.
type Record = widget.Record

// Request carries per-request actor identity and scene state.
type Request = widget.Request

// Registry resolves widget types by name.
type Registry = widget.Registry

// PlayerData is the markup-embedded payload policy.
type PlayerData = widget.PlayerData

// BrowserData is the editor runtime descriptor.
type BrowserData = widget.BrowserData

// Field describes one schema field.
type Field = schema.Field

// Actor identifies an authenticated user.
type Actor = permission.Actor

// Option injects collaborators into a Type under construction.
type Option = widget.Option

// NewType builds a widget type, surfacing configuration errors at startup.
func NewType(cfg Config, options ...Option) (*Type, error) {
	return widget.New(cfg, options...)
}

// MustNewType panics on configuration errors. Useful for init-time wiring.
func MustNewType(cfg Config, options ...Option) *Type {
	return widget.MustNew(cfg, options...)
}

// NewRegistry creates an empty widget type registry.
func NewRegistry() *Registry {
	return widget.NewRegistry()
}

// NewJoiner returns the reference batch joiner over a document store.
func NewJoiner(st store.DocumentStore, logger zerolog.Logger) schema.Joiner {
	return join.New(st, join.WithLogger(logger))
}

// NewReplayer returns the reference nested-content replayer resolving
// widget types from types.
func NewReplayer(types *Registry, logger zerolog.Logger) widget.Replayer {
	return pipeline.NewReplayer(types, pipeline.WithLogger(logger))
}

// ListOccurrences scans every persisted document and reports each
// occurrence of the named widget type as a (slug, dotPath) pair.
func ListOccurrences(ctx context.Context, st store.DocumentStore, typeName string, visit func(slug, path string) error) error {
	return pipeline.ListOccurrences(ctx, st, typeName, visit)
}
