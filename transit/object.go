package transit

import "strconv"

// object is a loosely typed JSON object. All accessors substitute a zero
// value when a field is absent, null, or of an unexpected type; no field
// access may panic on malformed upstream data. Methods are safe on a nil
// object.
type object map[string]any

func asObject(v any) object {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

func (o object) str(key string) string {
	switch t := o[key].(type) {
	case string:
		return t
	case float64:
		// some upstream IDs arrive as numbers
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func (o object) strOr(key, fallback string) string {
	if s := o.str(key); s != "" {
		return s
	}
	return fallback
}

func (o object) float(key string) float64 {
	f, _ := o[key].(float64)
	return f
}

// num returns the numeric value of key and whether it was present as a
// number. Needed where absence has a meaning distinct from zero.
func (o object) num(key string) (float64, bool) {
	f, ok := o[key].(float64)
	return f, ok
}

func (o object) bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}

func (o object) object(key string) object {
	return asObject(o[key])
}

func (o object) list(key string) []any {
	arr, _ := o[key].([]any)
	return arr
}

// asList normalizes a response body that may be a bare JSON array or an
// object wrapping the array under key.
func asList(v any, key string) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		arr, _ := t[key].([]any)
		return arr
	}
	return nil
}
