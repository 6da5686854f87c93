package widget

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-widgets/pkg/permission"
	"github.com/goliatone/go-widgets/pkg/render"
	"github.com/goliatone/go-widgets/pkg/schema"
)

// PlayerData controls which persistent fields reach the markup-embedded
// payload for actors without edit privilege: nothing (the zero value),
// everything (All), or a named subset (Fields). Editors always receive the
// full permanent copy regardless of policy.
type PlayerData struct {
	All    bool
	Fields []string
}

// UnmarshalYAML accepts the three declarative spellings: false/true or a
// list of field names.
func (p *PlayerData) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var all bool
		if err := value.Decode(&all); err != nil {
			return fmt.Errorf("widget: decode playerData: %w", err)
		}
		*p = PlayerData{All: all}
		return nil
	case yaml.SequenceNode:
		var fields []string
		if err := value.Decode(&fields); err != nil {
			return fmt.Errorf("widget: decode playerData: %w", err)
		}
		*p = PlayerData{Fields: fields}
		return nil
	default:
		return fmt.Errorf("widget: playerData must be a boolean or a list of field names")
	}
}

// BrowserOptions override the static fields of the editor runtime
// descriptor. Empty values leave the bundled defaults in place.
type BrowserOptions struct {
	Name   string `yaml:"name,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Action string `yaml:"action,omitempty"`
}

// Config is the declarative configuration surface of a widget type. Label is
// required; Name defaults to a slug of the label. The schema-shaping
// directives feed the compiler once at construction.
type Config struct {
	Name             string         `yaml:"name,omitempty"`
	Label            string         `yaml:"label"`
	Template         string         `yaml:"template,omitempty"`
	Action           string         `yaml:"action,omitempty"`
	PlayerData       PlayerData     `yaml:"playerData,omitempty"`
	Scene            string         `yaml:"scene,omitempty"`
	Defer            bool           `yaml:"defer,omitempty"`
	Contextual       bool           `yaml:"contextual,omitempty"`
	SkipInitialModal bool           `yaml:"skipInitialModal,omitempty"`
	Browser          BrowserOptions `yaml:"browser,omitempty"`

	AddFields     []schema.Field `yaml:"addFields,omitempty"`
	RemoveFields  []string       `yaml:"removeFields,omitempty"`
	ArrangeFields []schema.Group `yaml:"arrangeFields,omitempty"`
}

// ComposeOptions returns the schema directives in compiler form.
func (c Config) ComposeOptions() schema.ComposeOptions {
	return schema.ComposeOptions{
		AddFields:     c.AddFields,
		RemoveFields:  c.RemoveFields,
		ArrangeFields: c.ArrangeFields,
	}
}

// ConfigFromYAML decodes a widget type configuration document.
func ConfigFromYAML(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("widget: decode config: %w", err)
	}
	return cfg, nil
}

// Option injects a collaborator into a Type under construction.
type Option func(*Type)

// WithCompiler overrides the default schema compiler.
func WithCompiler(compiler schema.Compiler) Option {
	return func(t *Type) {
		t.compiler = compiler
	}
}

// WithConverter overrides the default input converter.
func WithConverter(converter schema.Converter) Option {
	return func(t *Type) {
		t.converter = converter
	}
}

// WithJoiner supplies the join primitive Load drives. Without one, Load
// skips the join step.
func WithJoiner(joiner schema.Joiner) Option {
	return func(t *Type) {
		t.joiner = joiner
	}
}

// WithPermissionEvaluator supplies the capability evaluator used to narrow
// the schema per actor. Without one, permission-tagged fields are never
// visible.
func WithPermissionEvaluator(eval permission.Evaluator) Option {
	return func(t *Type) {
		t.perms = eval
	}
}

// WithTemplateEngine supplies the engine Output delegates markup production
// to.
func WithTemplateEngine(engine render.TemplateEngine) Option {
	return func(t *Type) {
		t.engine = engine
	}
}

// WithReplayer supplies the nested-content replay step Load applies to
// virtual batches.
func WithReplayer(replayer Replayer) Option {
	return func(t *Type) {
		t.replayer = replayer
	}
}

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Type) {
		t.logger = logger
	}
}
