package schema

import "context"

// Converter turns untrusted raw input into typed, validated values for the
// supplied fields, writing results into dst. Fields absent from raw receive
// their defaults. Implementations must not mutate raw.
type Converter interface {
	Convert(ctx context.Context, raw map[string]any, fields []Field, dst map[string]any) error
}

// Joinable is the record surface join primitives read ids from and write
// resolved documents into. Derived values are transient: they are never
// persisted and never reach unprivileged clients.
type Joinable interface {
	// FieldValue returns a persistent field value by name.
	FieldValue(name string) (any, bool)
	// SetDerived stores a join-produced value under a derived name.
	SetDerived(name string, value any)
}

// Joiner resolves the join fields of a schema for an entire batch. The
// contract is batch-at-a-time: implementations must use a bounded number of
// store round trips regardless of batch size, never one per record. A failed
// join fails the whole batch; there is no partial success.
type Joiner interface {
	Join(ctx context.Context, fields []Field, batch []Joinable) error
}

// JoinerFunc adapts a function into a Joiner.
type JoinerFunc func(ctx context.Context, fields []Field, batch []Joinable) error

// Join delegates to the underlying function.
func (fn JoinerFunc) Join(ctx context.Context, fields []Field, batch []Joinable) error {
	return fn(ctx, fields, batch)
}
