package permission

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-widgets/pkg/schema"
)

func testFields() []schema.Field {
	return []schema.Field{
		{Name: "title", Type: schema.TypeString},
		{Name: "internalNotes", Type: schema.TypeString, Permission: "admin"},
		{Name: "body", Type: schema.TypeString},
	}
}

func fieldNames(fields []schema.Field) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return names
}

func TestAllowed_UntaggedFieldsPassForAnonymous(t *testing.T) {
	allowed := Allowed(testFields(), nil, GrantSet{})
	if diff := cmp.Diff([]string{"title", "body"}, fieldNames(allowed)); diff != "" {
		t.Fatalf("allowed fields mismatch (-want +got):\n%s", diff)
	}
}

func TestAllowed_GrantedCapabilityPreservesOrder(t *testing.T) {
	grants := GrantSet{"u1": {"admin": true}}
	allowed := Allowed(testFields(), &Actor{ID: "u1"}, grants)
	if diff := cmp.Diff([]string{"title", "internalNotes", "body"}, fieldNames(allowed)); diff != "" {
		t.Fatalf("allowed fields mismatch (-want +got):\n%s", diff)
	}
}

func TestAllowed_NilEvaluatorHidesTaggedFields(t *testing.T) {
	allowed := Allowed(testFields(), &Actor{ID: "u1"}, nil)
	if diff := cmp.Diff([]string{"title", "body"}, fieldNames(allowed)); diff != "" {
		t.Fatalf("allowed fields mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluatorFunc(t *testing.T) {
	eval := EvaluatorFunc(func(actor *Actor, capability string) bool {
		return capability == "edit"
	})
	if !eval.Can(&Actor{ID: "u1"}, "edit") || eval.Can(nil, "admin") {
		t.Fatalf("EvaluatorFunc did not delegate")
	}
}
