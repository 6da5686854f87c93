package schema

import "fmt"

// FieldType identifies the editor control and conversion rules for a field.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeBoolean     FieldType = "boolean"
	TypeInteger     FieldType = "integer"
	TypeFloat       FieldType = "float"
	TypeSelect      FieldType = "select"
	TypeArea        FieldType = "area"
	TypeJoinByOne   FieldType = "joinByOne"
	TypeJoinByArray FieldType = "joinByArray"
)

// Choice is a single selectable value for select-style fields.
type Choice struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// Field describes one named, typed property of a widget. Permission, when
// set, names the capability an actor must hold for the field to be visible
// or editable. Join fields (TypeJoinByOne, TypeJoinByArray) name the target
// document type in WithType and store their ids under IDField; the joined
// documents land in a derived property named after the field.
type Field struct {
	Name       string    `json:"name" yaml:"name"`
	Type       FieldType `json:"type" yaml:"type"`
	Label      string    `json:"label,omitempty" yaml:"label,omitempty"`
	Help       string    `json:"help,omitempty" yaml:"help,omitempty"`
	Required   bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Def        any       `json:"def,omitempty" yaml:"def,omitempty"`
	Choices    []Choice  `json:"choices,omitempty" yaml:"choices,omitempty"`
	Permission string    `json:"permission,omitempty" yaml:"permission,omitempty"`
	WithType   string    `json:"withType,omitempty" yaml:"withType,omitempty"`
	IDField    string    `json:"idField,omitempty" yaml:"idField,omitempty"`
	Nested     []Field   `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// IsJoin reports whether the field is resolved by the join step rather than
// persisted directly.
func (f Field) IsJoin() bool {
	return f.Type == TypeJoinByOne || f.Type == TypeJoinByArray
}

// JoinIDField returns the persistent property a join field stores its
// related ids under: the declared IDField, or the field name suffixed with
// Id/Ids by cardinality.
func JoinIDField(f Field) string {
	if f.IDField != "" {
		return f.IDField
	}
	if f.Type == TypeJoinByOne {
		return f.Name + "Id"
	}
	return f.Name + "Ids"
}

// reservedNames can never appear in a composed schema; they collide with the
// identity properties every widget record carries.
var reservedNames = map[string]struct{}{
	"_id":  {},
	"type": {},
}

// Reserved reports whether a field name collides with record identity
// properties.
func Reserved(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// ValidateNames rejects schemas containing reserved field names. The returned
// error names the first offending field.
func ValidateNames(fields []Field) error {
	for _, field := range fields {
		if Reserved(field.Name) {
			return fmt.Errorf("schema: field %q: %w", field.Name, ErrReservedField)
		}
	}
	return nil
}

// DefaultValue returns the value a freshly sanitized record receives for the
// field: the declared default when present, otherwise the zero value for the
// field type.
func DefaultValue(f Field) any {
	if f.Def != nil {
		return f.Def
	}
	switch f.Type {
	case TypeString, TypeSelect:
		return ""
	case TypeBoolean:
		return false
	case TypeInteger:
		return 0
	case TypeFloat:
		return 0.0
	case TypeArea:
		return map[string]any{"metaType": "area", "items": []any{}}
	case TypeJoinByOne:
		return nil
	case TypeJoinByArray:
		return []any{}
	default:
		return nil
	}
}
