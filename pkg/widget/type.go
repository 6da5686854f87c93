package widget

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-widgets/internal/fields"
	"github.com/goliatone/go-widgets/pkg/permission"
	"github.com/goliatone/go-widgets/pkg/render"
	"github.com/goliatone/go-widgets/pkg/schema"
)

const defaultTemplate = "widget"

// Type is the behaviour set of one widget type. It is immutable after New:
// the composed schema is computed once and cached for the process lifetime,
// and all collaborators are fixed at construction.
type Type struct {
	name             string
	label            string
	template         string
	action           string
	playerData       PlayerData
	scene            string
	deferred         bool
	contextual       bool
	skipInitialModal bool
	browser          BrowserOptions

	schema []schema.Field

	compiler  schema.Compiler
	converter schema.Converter
	joiner    schema.Joiner
	perms     permission.Evaluator
	engine    render.TemplateEngine
	replayer  Replayer
	logger    zerolog.Logger
}

// New builds a widget type from its configuration. Configuration errors — a
// missing label, or a composed schema using a reserved field name — are
// fatal and reported here, at startup, never per-request.
func New(cfg Config, options ...Option) (*Type, error) {
	if strings.TrimSpace(cfg.Label) == "" {
		return nil, ErrMissingLabel
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = slugify(cfg.Label)
	}

	template := strings.TrimSpace(cfg.Template)
	if template == "" {
		template = defaultTemplate
	}

	t := &Type{
		name:             name,
		label:            cfg.Label,
		template:         template,
		action:           cfg.Action,
		playerData:       cfg.PlayerData,
		scene:            cfg.Scene,
		deferred:         cfg.Defer,
		contextual:       cfg.Contextual,
		skipInitialModal: cfg.SkipInitialModal,
		browser:          cfg.Browser,
		logger:           zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}

	if t.compiler == nil {
		t.compiler = fields.NewCompiler()
	}
	if t.converter == nil {
		t.converter = fields.NewConverter()
	}

	composed, err := t.compiler.Compose(cfg.ComposeOptions())
	if err != nil {
		return nil, fmt.Errorf("widget %q: compose schema: %w", name, err)
	}
	if err := schema.ValidateNames(composed); err != nil {
		return nil, fmt.Errorf("widget %q: compose schema: %w", name, err)
	}
	t.schema = composed

	t.logger.Debug().
		Str("widget", t.name).
		Int("fields", len(t.schema)).
		Msg("composed widget schema")

	return t, nil
}

// MustNew panics on configuration errors. Useful for init-time wiring.
func MustNew(cfg Config, options ...Option) *Type {
	t, err := New(cfg, options...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the unique widget type key.
func (t *Type) Name() string { return t.name }

// Label returns the human-facing label.
func (t *Type) Label() string { return t.label }

// Template returns the template name Output renders.
func (t *Type) Template() string { return t.template }

// Deferred reports whether this type opts into late enrichment: the hosting
// renderer collects every occurrence across a page and calls Load exactly
// once, immediately before rendering, instead of eagerly per owning
// document. Results are only available to render-time expansion, never to
// later asynchronous consumers.
func (t *Type) Deferred() bool { return t.deferred }

// Contextual reports whether the widget is edited in context on the page
// rather than through the editor modal.
func (t *Type) Contextual() bool { return t.contextual }

// Scene returns the asset scene this type escalates requests to, if any.
func (t *Type) Scene() string { return t.scene }

// Schema returns a copy of the composed field list.
func (t *Type) Schema() []schema.Field {
	return append([]schema.Field(nil), t.schema...)
}

// AllowedSchema narrows the composed schema to the fields the request's
// actor may access, preserving order. Pure per-request computation; never
// cached across requests.
func (t *Type) AllowedSchema(req *Request) []schema.Field {
	var actor *permission.Actor
	if req != nil {
		actor = req.Actor
	}
	return permission.Allowed(t.schema, actor, t.perms)
}

func slugify(label string) string {
	slug := strings.ToLower(strings.TrimSpace(label))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
