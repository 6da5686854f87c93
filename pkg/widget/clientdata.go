package widget

// FilterForDataAttribute produces the minimal record safe to inline as
// markup-embedded JSON on the widget's wrapper element. Derived values and
// function values never appear. Editors and PlayerData.All types get the
// full permanent copy; a PlayerData.Fields list picks exactly those keys
// (missing keys omitted); the default policy embeds nothing.
func (t *Type) FilterForDataAttribute(w *Record) map[string]any {
	permanent := w.PermanentCopy()

	if w.Editable || t.playerData.All {
		return permanent
	}
	if len(t.playerData.Fields) > 0 {
		picked := make(map[string]any, len(t.playerData.Fields))
		for _, name := range t.playerData.Fields {
			if value, ok := permanent[name]; ok {
				picked[name] = value
			}
		}
		return picked
	}
	return map[string]any{}
}

// FilterOptionsForDataAttribute applies the same permanent-only deep copy to
// the per-placement options. Options carry no privilege distinction.
func (t *Type) FilterOptionsForDataAttribute(options map[string]any) map[string]any {
	out := make(map[string]any, len(options))
	for key, value := range options {
		cleaned, ok := cloneValue(value)
		if !ok {
			continue
		}
		out[key] = cleaned
	}
	return out
}
