package record

import "encoding/json"

// Cleaned returns the CV as a generic JSON tree with every empty string, empty
// list and empty mapping removed recursively. This is the form handed to
// downstream consumers and serialized by the API layer.
func (cv *CV) Cleaned() map[string]any {
	raw, err := json.Marshal(cv)
	if err != nil {
		return map[string]any{}
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return map[string]any{}
	}
	out, _ := Clean(tree).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	return out
}

// Clean recursively removes keys and elements whose value is an empty string,
// empty list, empty mapping or nil, at every nesting level. Cleaning an
// already-clean tree returns an equal tree (idempotent).
func Clean(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			cleaned := Clean(item)
			if isEmpty(cleaned) {
				continue
			}
			out[k] = cleaned
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			cleaned := Clean(item)
			if isEmpty(cleaned) {
				continue
			}
			out = append(out, cleaned)
		}
		return out
	default:
		return v
	}
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}
