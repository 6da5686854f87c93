package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateNames_RejectsReserved(t *testing.T) {
	cases := []string{"_id", "type"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateNames([]Field{
				{Name: "title", Type: TypeString},
				{Name: name, Type: TypeString},
			})
			if !errors.Is(err, ErrReservedField) {
				t.Fatalf("expected ErrReservedField, got %v", err)
			}
		})
	}
}

func TestValidateNames_AllowsRegularFields(t *testing.T) {
	err := ValidateNames([]Field{
		{Name: "title", Type: TypeString},
		{Name: "typeface", Type: TypeString},
		{Name: "id", Type: TypeString},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJoinIDField(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		want  string
	}{
		{"declared", Field{Name: "authors", Type: TypeJoinByArray, IDField: "authorDocIds"}, "authorDocIds"},
		{"byOne", Field{Name: "author", Type: TypeJoinByOne}, "authorId"},
		{"byArray", Field{Name: "authors", Type: TypeJoinByArray}, "authorsIds"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := JoinIDField(tc.field); got != tc.want {
				t.Fatalf("JoinIDField = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDefaultValue(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		want  any
	}{
		{"declared default", Field{Type: TypeString, Def: "untitled"}, "untitled"},
		{"string zero", Field{Type: TypeString}, ""},
		{"bool zero", Field{Type: TypeBoolean}, false},
		{"integer zero", Field{Type: TypeInteger}, 0},
		{"float zero", Field{Type: TypeFloat}, 0.0},
		{"join array zero", Field{Type: TypeJoinByArray}, []any{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, DefaultValue(tc.field)); diff != "" {
				t.Fatalf("default mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultValue_Area(t *testing.T) {
	got, ok := DefaultValue(Field{Type: TypeArea}).(map[string]any)
	if !ok {
		t.Fatalf("expected map default for area, got %T", got)
	}
	if got["metaType"] != "area" {
		t.Fatalf("expected area metaType, got %v", got["metaType"])
	}
}
