// Package fields is the reference schema engine behind the pkg/schema
// Compiler and Converter seams: it assembles field lists from compose
// directives and coerces untrusted editor input into typed values for the
// basic field kinds.
package fields

import (
	"fmt"

	"github.com/goliatone/go-widgets/pkg/schema"
)

// Compiler assembles ordered field lists from declarative directives.
type Compiler struct{}

// NewCompiler returns the reference compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compose applies addFields (append, or replace in place by name), then
// removeFields, then arrangeFields. Arranged groups come first in group
// order; fields no group names keep their relative order after them. An
// arrange directive naming an unknown field is a configuration error.
func (c *Compiler) Compose(opts schema.ComposeOptions) ([]schema.Field, error) {
	composed := make([]schema.Field, 0, len(opts.AddFields))
	index := make(map[string]int, len(opts.AddFields))

	for _, field := range opts.AddFields {
		if at, ok := index[field.Name]; ok {
			composed[at] = field
			continue
		}
		index[field.Name] = len(composed)
		composed = append(composed, field)
	}

	if len(opts.RemoveFields) > 0 {
		removed := make(map[string]struct{}, len(opts.RemoveFields))
		for _, name := range opts.RemoveFields {
			removed[name] = struct{}{}
		}
		kept := composed[:0]
		for _, field := range composed {
			if _, drop := removed[field.Name]; drop {
				continue
			}
			kept = append(kept, field)
		}
		composed = kept
	}

	if len(opts.ArrangeFields) == 0 {
		return composed, nil
	}

	byName := make(map[string]schema.Field, len(composed))
	for _, field := range composed {
		byName[field.Name] = field
	}

	arranged := make([]schema.Field, 0, len(composed))
	seen := make(map[string]struct{}, len(composed))
	for _, group := range opts.ArrangeFields {
		for _, name := range group.Fields {
			field, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("fields: arrange group %q: field %q: %w",
					group.Name, name, schema.ErrUnknownField)
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			arranged = append(arranged, field)
		}
	}
	for _, field := range composed {
		if _, ok := seen[field.Name]; ok {
			continue
		}
		arranged = append(arranged, field)
	}
	return arranged, nil
}
