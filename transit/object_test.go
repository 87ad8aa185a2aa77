package transit

import (
	"reflect"
	"testing"
)

func TestObjectAccessorsNilSafe(t *testing.T) {
	var o object
	if got := o.str("x"); got != "" {
		t.Errorf("str on nil object: expected empty, got %q", got)
	}
	if got := o.strOr("x", "?"); got != "?" {
		t.Errorf("strOr on nil object: expected ?, got %q", got)
	}
	if got := o.float("x"); got != 0 {
		t.Errorf("float on nil object: expected 0, got %v", got)
	}
	if _, ok := o.num("x"); ok {
		t.Error("num on nil object: expected absent")
	}
	if o.bool("x") {
		t.Error("bool on nil object: expected false")
	}
	if o.object("x") != nil {
		t.Error("object on nil object: expected nil")
	}
	if o.list("x") != nil {
		t.Error("list on nil object: expected nil")
	}
}

func TestObjectStr(t *testing.T) {
	o := object{
		"name": "Freiburg Hbf",
		"id":   float64(8000107),
		"null": nil,
		"obj":  map[string]any{},
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"name", "Freiburg Hbf"},
		{"id", "8000107"},
		{"null", ""},
		{"obj", ""},
		{"missing", ""},
	}
	for _, tt := range tests {
		if got := o.str(tt.key); got != tt.expected {
			t.Errorf("str(%q): expected %q, got %q", tt.key, tt.expected, got)
		}
	}
}

func TestAsObject(t *testing.T) {
	if asObject(map[string]any{"a": 1}) == nil {
		t.Error("expected object for map input")
	}
	if asObject("not an object") != nil {
		t.Error("expected nil for string input")
	}
	if asObject(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestAsList(t *testing.T) {
	bare := []any{"a", "b"}

	tests := []struct {
		name     string
		input    any
		key      string
		expected []any
	}{
		{"bare array", bare, "departures", bare},
		{"wrapped array", map[string]any{"departures": bare}, "departures", bare},
		{"wrong key", map[string]any{"arrivals": bare}, "departures", nil},
		{"wrapped non-array", map[string]any{"departures": "nope"}, "departures", nil},
		{"scalar", "nope", "departures", nil},
		{"nil", nil, "departures", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asList(tt.input, tt.key)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %#v, got %#v", tt.expected, got)
			}
		})
	}
}
