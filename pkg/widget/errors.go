package widget

import "errors"

var (
	// ErrMissingLabel is returned by New when a widget type omits the
	// required label option. This is a configuration error and aborts
	// construction.
	ErrMissingLabel = errors.New("widget: label option is required")

	// ErrMixedBatch is returned by Load when a batch mixes virtual and
	// persisted widgets. Batch homogeneity is a documented precondition of
	// the Load contract.
	ErrMixedBatch = errors.New("widget: batch mixes virtual and persisted widgets")

	// ErrNoTemplateEngine is returned by Output when the type was built
	// without a template engine.
	ErrNoTemplateEngine = errors.New("widget: no template engine configured")
)
