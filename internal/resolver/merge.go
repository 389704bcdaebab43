package resolver

// override returns the value from the innermost scope that sets it.
// Layers are passed innermost first; the first non-nil pointer wins.
// Scopes model "unset" as a nil pointer, so a zero value set explicitly
// at an inner scope still overrides an outer one.
func override[T any](layers ...*T) *T {
	for _, layer := range layers {
		if layer != nil {
			return layer
		}
	}
	return nil
}

// overrideOr resolves like override but falls back to a documented
// default when no scope sets the field.
func overrideOr[T any](fallback T, layers ...*T) T {
	if v := override(layers...); v != nil {
		return *v
	}
	return fallback
}
