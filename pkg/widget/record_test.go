package widget

import (
	"encoding/json"
	"testing"
)

func TestFromMap_SeparatesDerivedFromPersistent(t *testing.T) {
	rec := FromMap(map[string]any{
		"_id":      "w1",
		"type":     "fancy-article",
		"metaType": "widget",
		"title":    "x",
		"_related": []any{"doc"},
	})

	if rec.ID != "w1" || rec.TypeName != "fancy-article" {
		t.Fatalf("identity lost: %+v", rec)
	}
	if rec.Fields["title"] != "x" {
		t.Fatalf("persistent field lost: %v", rec.Fields)
	}
	if _, ok := rec.Fields["_related"]; ok {
		t.Fatalf("underscore keys must not land in persistent fields")
	}
	if _, ok := rec.DerivedValue("related"); !ok {
		t.Fatalf("underscore keys should surface as derived values")
	}
}

func TestMarshalJSON_OmitsDerivedAndTransient(t *testing.T) {
	rec := NewRecord("fancy-article")
	rec.ID = "w1"
	rec.SetField("title", "x")
	rec.SetDerived("related", []any{"doc"})
	rec.Virtual = true
	rec.Editable = true

	payload, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out["_id"] != "w1" || out["type"] != "fancy-article" || out["metaType"] != "widget" {
		t.Fatalf("identity missing from persisted shape: %v", out)
	}
	if out["title"] != "x" {
		t.Fatalf("persistent field missing: %v", out)
	}
	for _, key := range []string{"related", "_related", "Virtual", "Editable"} {
		if _, leaked := out[key]; leaked {
			t.Fatalf("transient key %q leaked into persisted shape: %v", key, out)
		}
	}
}
