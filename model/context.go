package model

import (
	"maps"
	"reflect"

	"github.com/coalaip/go-coalaip/vocabulary"
)

// normalizeContext brings a caller- or wire-supplied @context value into the
// canonical sequence form. A nil value yields the default context (COALA IP
// followed by schema.org); a bare string or mapping becomes a one-element
// sequence. The result is always a fresh slice.
func normalizeContext(v any) ([]any, error) {
	switch c := v.(type) {
	case nil:
		return vocabulary.DefaultContext(), nil
	case string:
		return []any{c}, nil
	case []string:
		out := make([]any, len(c))
		for i, s := range c {
			out[i] = s
		}
		return out, nil
	case []any:
		return cloneContext(c), nil
	case map[string]any:
		return []any{maps.Clone(c)}, nil
	default:
		return nil, &DataError{Field: vocabulary.KeyContext, Reason: "must be a string, sequence, or mapping"}
	}
}

// cloneContext copies a context sequence so callers cannot mutate the stored
// one through a returned reference. Mapping elements are copied one level
// deep.
func cloneContext(ctx []any) []any {
	out := make([]any, len(ctx))
	for i, elem := range ctx {
		if m, ok := elem.(map[string]any); ok {
			out[i] = maps.Clone(m)
			continue
		}
		out[i] = elem
	}
	return out
}

// contextsEqual compares two normalized context sequences element-wise.
func contextsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
