package widget

import "github.com/goliatone/go-widgets/pkg/schema"

// BrowserData is the editor runtime descriptor for one widget type. It is
// only ever sent to authenticated browsers.
type BrowserData struct {
	Name             string         `json:"name"`
	Label            string         `json:"label"`
	Action           string         `json:"action"`
	Schema           []schema.Field `json:"schema"`
	Contextual       bool           `json:"contextual"`
	SkipInitialModal bool           `json:"skipInitialModal"`
}

// BrowserData assembles the descriptor the privileged editor runtime needs:
// identity, the base action route, and the schema narrowed to the actor's
// permissions. Anonymous requests get nil — the editor bundle must never
// reach unauthenticated clients. Browser overrides from configuration
// replace the static fields.
func (t *Type) BrowserData(req *Request) *BrowserData {
	if !req.Authenticated() {
		return nil
	}

	data := &BrowserData{
		Name:             t.name,
		Label:            t.label,
		Action:           t.action,
		Schema:           t.AllowedSchema(req),
		Contextual:       t.contextual,
		SkipInitialModal: t.skipInitialModal,
	}
	if t.browser.Name != "" {
		data.Name = t.browser.Name
	}
	if t.browser.Label != "" {
		data.Label = t.browser.Label
	}
	if t.browser.Action != "" {
		data.Action = t.browser.Action
	}
	return data
}
