package schema

// Group arranges a subset of fields under a named editor tab.
type Group struct {
	Name   string   `json:"name" yaml:"name"`
	Label  string   `json:"label,omitempty" yaml:"label,omitempty"`
	Fields []string `json:"fields" yaml:"fields"`
}

// ComposeOptions are the declarative directives a widget type supplies to
// shape its schema. AddFields append (or override by name), RemoveFields
// delete by name, ArrangeFields reorder the result group by group; fields
// not named by any group keep their relative order after the arranged ones.
type ComposeOptions struct {
	AddFields     []Field  `json:"addFields,omitempty" yaml:"addFields,omitempty"`
	RemoveFields  []string `json:"removeFields,omitempty" yaml:"removeFields,omitempty"`
	ArrangeFields []Group  `json:"arrangeFields,omitempty" yaml:"arrangeFields,omitempty"`
}

// Compiler assembles an ordered field list from compose directives. The
// result is computed once per widget type at construction and cached for the
// process lifetime.
type Compiler interface {
	Compose(opts ComposeOptions) ([]Field, error)
}

// CompilerFunc adapts a function into a Compiler.
type CompilerFunc func(opts ComposeOptions) ([]Field, error)

// Compose delegates to the underlying function.
func (fn CompilerFunc) Compose(opts ComposeOptions) ([]Field, error) {
	return fn(opts)
}
