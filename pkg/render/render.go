// Package render declares the template engine seam the widget pipeline
// delegates markup production to. The contract mirrors the
// github.com/goliatone/go-template engine; a pongo2-backed adapter lives in
// the gotemplate subpackage.
package render

import "io"

// TemplateEngine renders named templates or inline template content. Render
// treats its first argument as inline content when it looks like template
// markup and as a template name otherwise.
type TemplateEngine interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
}
