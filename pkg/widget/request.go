package widget

import "github.com/goliatone/go-widgets/pkg/permission"

// Request carries the per-request context the pipeline depends on: the
// acting identity (nil for anonymous traffic) and the scene flag that
// selects which client asset bundle the response delivers. Load escalates
// Scene when its widget type declares one.
type Request struct {
	Actor *permission.Actor
	Scene string
}

// Authenticated reports whether the request carries an actor. The editor
// runtime descriptor is only ever produced for authenticated requests.
func (r *Request) Authenticated() bool {
	return r != nil && r.Actor != nil
}

// EscalateScene widens the request scene. An empty name is a no-op.
func (r *Request) EscalateScene(name string) {
	if r == nil || name == "" {
		return
	}
	r.Scene = name
}
