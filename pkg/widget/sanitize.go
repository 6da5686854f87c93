package widget

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/goliatone/go-widgets/pkg/schema"
)

var wellFormedID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Sanitize converts untrusted editor input into a validated record. Missing
// or non-map input is replaced with an empty map rather than failing the
// request, so a malformed save yields a record of schema defaults.
//
// Defaults come from the full schema, including fields the actor cannot
// edit, so contextual and required fields always receive values. The
// convert/validate step then runs only over the permission-narrowed subset;
// fields outside it keep their defaults, which closes privilege escalation
// through crafted input. The identity properties are stamped
// unconditionally, overriding anything the caller supplied. The input is
// never mutated.
func (t *Type) Sanitize(ctx context.Context, req *Request, raw any) (*Record, error) {
	input, ok := raw.(map[string]any)
	if !ok {
		input = map[string]any{}
	}

	rec := NewRecord(t.name)
	for _, field := range t.schema {
		rec.Fields[persistentName(field)] = schema.DefaultValue(field)
	}

	allowed := t.AllowedSchema(req)
	if err := t.converter.Convert(ctx, input, allowed, rec.Fields); err != nil {
		return nil, fmt.Errorf("widget %q: convert input: %w", t.name, err)
	}

	rec.ID = sanitizeID(input["_id"])

	t.logger.Debug().
		Str("widget", t.name).
		Str("id", rec.ID).
		Int("allowedFields", len(allowed)).
		Msg("sanitized widget input")

	return rec, nil
}

// persistentName is the key a field stores under: join fields persist their
// id list, everything else persists under the field name.
func persistentName(field schema.Field) string {
	if field.IsJoin() {
		return schema.JoinIDField(field)
	}
	return field.Name
}

// sanitizeID keeps a caller-supplied identifier when well formed and
// generates a fresh one otherwise.
func sanitizeID(raw any) string {
	if id, ok := raw.(string); ok && wellFormedID.MatchString(id) {
		return id
	}
	return uuid.NewString()
}
