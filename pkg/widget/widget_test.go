package widget

import (
	"context"
	"io"

	"github.com/goliatone/go-widgets/pkg/permission"
	"github.com/goliatone/go-widgets/pkg/schema"
)

// Shared collaborator fakes for the package tests, in the stub/capture style
// used throughout the module.

type captureJoiner struct {
	calls   int
	fields  []schema.Field
	batches [][]schema.Joinable
	err     error
}

func (j *captureJoiner) Join(_ context.Context, fields []schema.Field, batch []schema.Joinable) error {
	j.calls++
	j.fields = fields
	j.batches = append(j.batches, batch)
	return j.err
}

type captureReplayer struct {
	calls   int
	batches [][]*Record
	opts    []ReplayOptions
	err     error
}

func (r *captureReplayer) Replay(_ context.Context, _ *Request, batch []*Record, opts ReplayOptions) error {
	r.calls++
	r.batches = append(r.batches, batch)
	r.opts = append(r.opts, opts)
	return r.err
}

type captureEngine struct {
	name string
	data map[string]any
	out  string
	err  error
}

func (e *captureEngine) render(name string, data any) (string, error) {
	e.name = name
	if m, ok := data.(map[string]any); ok {
		e.data = m
	}
	if e.err != nil {
		return "", e.err
	}
	return e.out, nil
}

func (e *captureEngine) Render(name string, data any, _ ...io.Writer) (string, error) {
	return e.render(name, data)
}

func (e *captureEngine) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	return e.render(name, data)
}

func (e *captureEngine) RenderString(content string, data any, _ ...io.Writer) (string, error) {
	return e.render(content, data)
}

func testConfig() Config {
	return Config{
		Label: "Fancy Article",
		AddFields: []schema.Field{
			{Name: "title", Type: schema.TypeString, Def: "untitled", Required: true},
			{Name: "secret", Type: schema.TypeString, Def: "hidden", Permission: "admin"},
		},
	}
}

func editorRequest() *Request {
	return &Request{Actor: &permission.Actor{ID: "editor"}}
}
