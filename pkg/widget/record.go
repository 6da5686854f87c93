package widget

import (
	"encoding/json"
	"reflect"

	"github.com/mohae/deepcopy"

	"github.com/goliatone/go-widgets/pkg/schema"
)

// MetaType marks widget records apart from other nested content shapes.
const MetaType = "widget"

// Record is one widget instance. Persistent schema-declared values live in
// Fields; join-produced values live in Derived and are never persisted and
// never reach unprivileged clients. Virtual records are not backed by a
// persisted document (live preview during editing). Editable is the
// per-request editing privilege stamped by the loading layer; it is
// transient like Derived.
type Record struct {
	ID       string
	TypeName string
	Fields   map[string]any
	Derived  map[string]any
	Virtual  bool
	Editable bool
}

// NewRecord returns an empty record of the given widget type.
func NewRecord(typeName string) *Record {
	return &Record{
		TypeName: typeName,
		Fields:   make(map[string]any),
		Derived:  make(map[string]any),
	}
}

// FromMap builds a record from a persisted widget map. Identity keys (_id,
// type, metaType) populate the record identity; keys with a leading
// underscore are treated as previously attached transient data and land in
// Derived; everything else is a persistent field. The input map is not
// retained.
func FromMap(m map[string]any) *Record {
	rec := NewRecord("")
	for key, value := range m {
		switch key {
		case "_id":
			if id, ok := value.(string); ok {
				rec.ID = id
			}
		case "type":
			if name, ok := value.(string); ok {
				rec.TypeName = name
			}
		case "metaType":
			// implied by the record type
		default:
			if len(key) > 0 && key[0] == '_' {
				rec.Derived[key[1:]] = value
			} else {
				rec.Fields[key] = value
			}
		}
	}
	return rec
}

// FieldValue returns a persistent field value. Implements schema.Joinable.
func (r *Record) FieldValue(name string) (any, bool) {
	value, ok := r.Fields[name]
	return value, ok
}

// SetField stores a persistent field value.
func (r *Record) SetField(name string, value any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[name] = value
}

// SetDerived stores a join-produced value. Implements schema.Joinable.
func (r *Record) SetDerived(name string, value any) {
	if r.Derived == nil {
		r.Derived = make(map[string]any)
	}
	r.Derived[name] = value
}

// DerivedValue returns a derived value by name.
func (r *Record) DerivedValue(name string) (any, bool) {
	value, ok := r.Derived[name]
	return value, ok
}

var _ schema.Joinable = (*Record)(nil)

// MarshalJSON emits the persisted shape: identity properties plus persistent
// fields. Derived values and transient flags never serialize.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+3)
	for key, value := range r.Fields {
		out[key] = value
	}
	out["_id"] = r.ID
	out["type"] = r.TypeName
	out["metaType"] = MetaType
	return json.Marshal(out)
}

// PermanentCopy deep-copies the persistent fields plus identity properties,
// excluding function values at any depth. This is the safe base for
// markup-embedded payloads: derived data can be large and must never leak
// beyond the declared policy.
func (r *Record) PermanentCopy() map[string]any {
	out := make(map[string]any, len(r.Fields)+3)
	for key, value := range r.Fields {
		cleaned, ok := cloneValue(value)
		if !ok {
			continue
		}
		out[key] = cleaned
	}
	out["_id"] = r.ID
	out["type"] = r.TypeName
	out["metaType"] = MetaType
	return out
}

// cloneValue deep-copies value, reporting false for function values so they
// are dropped rather than serialized.
func cloneValue(value any) (any, bool) {
	if value == nil {
		return nil, true
	}
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			cleaned, ok := cloneValue(item)
			if !ok {
				continue
			}
			out[key] = cleaned
		}
		return out, true
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			cleaned, ok := cloneValue(item)
			if !ok {
				continue
			}
			out = append(out, cleaned)
		}
		return out, true
	default:
		if reflect.ValueOf(value).Kind() == reflect.Func {
			return nil, false
		}
		return deepcopy.Copy(value), true
	}
}
