package fields

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-widgets/pkg/schema"
)

var (
	stringPolicyOnce sync.Once
	stringPolicy     *bluemonday.Policy

	wellFormedID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// textPolicy strips every tag from string input: widget string fields hold
// plain text, markup belongs in dedicated rich-text types.
func textPolicy() *bluemonday.Policy {
	stringPolicyOnce.Do(func() {
		stringPolicy = bluemonday.StrictPolicy()
	})
	return stringPolicy
}

// Converter coerces raw editor input into typed field values. It is lenient:
// values that cannot be coerced leave the schema default in place rather
// than failing the save, preserving editor continuity.
type Converter struct{}

// NewConverter returns the reference converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert writes coerced values for the supplied fields into dst. Fields
// absent from raw keep whatever dst already holds (their defaults). raw is
// never mutated.
func (c *Converter) Convert(ctx context.Context, raw map[string]any, fields []schema.Field, dst map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, field := range fields {
		key := field.Name
		if field.IsJoin() {
			key = schema.JoinIDField(field)
		}
		value, present := raw[key]
		if !present {
			continue
		}
		if converted, ok := convertValue(field, value); ok {
			dst[key] = converted
		}
	}
	return nil
}

func convertValue(field schema.Field, value any) (any, bool) {
	switch field.Type {
	case schema.TypeString:
		s, ok := coerceString(value)
		if !ok {
			return nil, false
		}
		return strings.TrimSpace(textPolicy().Sanitize(s)), true
	case schema.TypeSelect:
		s, ok := coerceString(value)
		if !ok {
			return nil, false
		}
		for _, choice := range field.Choices {
			if fmt.Sprintf("%v", choice.Value) == s {
				return choice.Value, true
			}
		}
		return nil, false
	case schema.TypeBoolean:
		return coerceBool(value)
	case schema.TypeInteger:
		return coerceInt(value)
	case schema.TypeFloat:
		return coerceFloat(value)
	case schema.TypeArea:
		return coerceArea(value)
	case schema.TypeJoinByOne:
		s, ok := value.(string)
		if !ok || !wellFormedID.MatchString(s) {
			return nil, false
		}
		return s, true
	case schema.TypeJoinByArray:
		items, ok := value.([]any)
		if !ok {
			return nil, false
		}
		ids := make([]any, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok && wellFormedID.MatchString(s) {
				ids = append(ids, s)
			}
		}
		return ids, true
	default:
		return nil, false
	}
}

func coerceString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func coerceBool(value any) (any, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, false
		}
		return parsed, true
	case float64:
		return v != 0, true
	case int:
		return v != 0, true
	default:
		return nil, false
	}
}

func coerceInt(value any) (any, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, false
		}
		return parsed, true
	default:
		return nil, false
	}
}

func coerceFloat(value any) (any, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		return parsed, true
	default:
		return nil, false
	}
}

// coerceArea accepts an area map, keeping only map-shaped items and
// restamping the area marker.
func coerceArea(value any) (any, bool) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	rawItems, _ := m["items"].([]any)
	items := make([]any, 0, len(rawItems))
	for _, item := range rawItems {
		if entry, ok := item.(map[string]any); ok {
			items = append(items, entry)
		}
	}
	return map[string]any{"metaType": "area", "items": items}, true
}
