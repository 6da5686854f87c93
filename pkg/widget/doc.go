// Package widget implements the behaviour set of a widget type: a reusable,
// schema-described content block editors place inside page areas. A Type
// composes its schema once at construction, sanitizes untrusted editor input
// into typed records on write paths, enriches records batch-at-a-time on
// read paths, and produces permission-scoped editor metadata plus a
// minimized, leak-safe payload for client-side hydration at render time.
//
// Schema compilation, value conversion, joins, permission evaluation,
// template rendering and document persistence are collaborator seams; the
// Type receives implementations at construction and never reaches into
// ambient state.
package widget
