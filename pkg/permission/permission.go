// Package permission narrows widget schemas to the fields an actor may see
// or edit. The capability evaluation itself belongs to the host application;
// this package defines the seam and a map-backed evaluator suitable for
// tests and simple deployments.
package permission

import "github.com/goliatone/go-widgets/pkg/schema"

// Actor identifies an authenticated user. A nil *Actor means the request is
// anonymous; anonymous requests never pass capability checks and never
// receive editor metadata.
type Actor struct {
	ID    string
	Title string
}

// Evaluator decides whether an actor holds a named capability.
type Evaluator interface {
	Can(actor *Actor, capability string) bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(actor *Actor, capability string) bool

// Can delegates to the underlying function.
func (fn EvaluatorFunc) Can(actor *Actor, capability string) bool {
	return fn(actor, capability)
}

// GrantSet is an Evaluator backed by a set of actor id → capability grants.
type GrantSet map[string]map[string]bool

// Can reports whether the actor was granted the capability.
func (g GrantSet) Can(actor *Actor, capability string) bool {
	if actor == nil {
		return false
	}
	return g[actor.ID][capability]
}

// Allowed filters fields to those the actor may access, preserving the
// original order. A field passes when it declares no Permission tag or the
// evaluator affirms the capability for this actor. Pure function of its
// inputs; results must not be cached across requests since they depend on
// the actor.
func Allowed(fields []schema.Field, actor *Actor, eval Evaluator) []schema.Field {
	allowed := make([]schema.Field, 0, len(fields))
	for _, field := range fields {
		if field.Permission != "" {
			if eval == nil || !eval.Can(actor, field.Permission) {
				continue
			}
		}
		allowed = append(allowed, field)
	}
	return allowed
}
