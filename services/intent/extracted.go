package intent

import (
	"fmt"
	"strconv"
	"strings"
)

// Typed accessors over the agent's loosely-typed extractedInfo map. The
// agent's field vocabulary evolves independently, so values arrive as
// whatever JSON decoded them to; these helpers absorb the coercion in one
// place instead of scattering type assertions through the handlers.

func stringField(info map[string]any, key string) (string, bool) {
	if info == nil {
		return "", false
	}
	v, ok := info[key]
	if !ok || v == nil {
		return "", false
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return "", false
	}
	return s, true
}

// selectionIndex reads a 1-based numeric selection and returns it 0-based.
func selectionIndex(info map[string]any, key string) (int, bool) {
	raw, ok := stringField(info, key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// JSON numbers stringify as "2" via fmt.Sprint unless fractional.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0, false
		}
		n = int(f)
	}
	return n - 1, true
}

// optionList reads a list of candidate objects, as sent in barber_options.
func optionList(info map[string]any, key string) ([]map[string]any, bool) {
	if info == nil {
		return nil, false
	}
	v, ok := info[key]
	if !ok {
		return nil, false
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	options := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			options = append(options, m)
		}
	}
	return options, true
}

// numericID reads an "id" field out of a candidate object.
func numericID(m map[string]any) (int64, bool) {
	v, ok := m["id"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
