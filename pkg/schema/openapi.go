package schema

import (
	"context"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// FieldsFromOpenAPIData derives a widget schema from a named component
// schema inside an OpenAPI document. Property order in OpenAPI is not
// significant, so fields are emitted in name order; callers wanting a
// specific layout should follow up with an ArrangeFields directive.
func FieldsFromOpenAPIData(ctx context.Context, data []byte, component string) ([]Field, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi document: %w", err)
	}
	return fieldsFromSpec(spec, component)
}

// FieldsFromOpenAPIFile is FieldsFromOpenAPIData for a document on disk.
func FieldsFromOpenAPIFile(ctx context.Context, path, component string) ([]Field, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi document %q: %w", path, err)
	}
	return fieldsFromSpec(spec, component)
}

func fieldsFromSpec(spec *openapi3.T, component string) ([]Field, error) {
	if spec.Components == nil {
		return nil, fmt.Errorf("schema: openapi document has no components")
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: component schema %q not found", component)
	}

	required := make(map[string]struct{}, len(ref.Value.Required))
	for _, name := range ref.Value.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		if Reserved(name) {
			continue
		}
		property := ref.Value.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		field := fieldFromProperty(name, property.Value)
		if field.Type == "" {
			continue
		}
		_, field.Required = required[name]
		fields = append(fields, field)
	}
	return fields, nil
}

func fieldFromProperty(name string, src *openapi3.Schema) Field {
	field := Field{
		Name:  name,
		Label: src.Title,
		Help:  src.Description,
		Def:   src.Default,
	}

	switch firstType(src.Type) {
	case "string":
		field.Type = TypeString
		if len(src.Enum) > 0 {
			field.Type = TypeSelect
			for _, value := range src.Enum {
				field.Choices = append(field.Choices, Choice{
					Label: fmt.Sprintf("%v", value),
					Value: value,
				})
			}
		}
	case "integer":
		field.Type = TypeInteger
	case "number":
		field.Type = TypeFloat
	case "boolean":
		field.Type = TypeBoolean
	}
	return field
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
