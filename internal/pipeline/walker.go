// Package pipeline implements the generic nested-content machinery the
// widget core drives: walking persisted bodies for widget occurrences and
// replaying the loading pipeline over virtual widget batches.
package pipeline

import (
	"sort"
	"strconv"

	"github.com/goliatone/go-widgets/pkg/widget"
)

// WalkWidgets visits every nested widget occurrence inside body, depth
// first, with deterministic key order. path is the dot-joined route from the
// body root to the occurrence ("body.items.0"). Walking stops at the first
// error returned by visit.
func WalkWidgets(body map[string]any, visit func(path string, item map[string]any) error) error {
	return walkValue("", body, visit)
}

func walkValue(path string, value any, visit func(path string, item map[string]any) error) error {
	switch v := value.(type) {
	case map[string]any:
		if isWidget(v) && path != "" {
			if err := visit(path, v); err != nil {
				return err
			}
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := walkValue(joinPath(path, key), v[key], visit); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range v {
			if err := walkValue(joinPath(path, strconv.Itoa(i)), item, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

func isWidget(m map[string]any) bool {
	return m["metaType"] == widget.MetaType
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}
