package widget

import (
	"context"
	"fmt"
)

// Output renders the widget through the configured template engine with the
// fixed variable triple {widget, options, manager}. No business logic lives
// here; enrichment must already have happened via Load.
func (t *Type) Output(ctx context.Context, req *Request, w *Record, options map[string]any) (string, error) {
	if t.engine == nil {
		return "", ErrNoTemplateEngine
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	markup, err := t.engine.Render(t.template, map[string]any{
		"widget":  w,
		"options": options,
		"manager": t,
	})
	if err != nil {
		return "", fmt.Errorf("widget %q: render template %q: %w", t.name, t.template, err)
	}
	return markup, nil
}
