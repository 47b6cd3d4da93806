package filter_test

import (
	"reflect"
	"testing"

	"s2replay/internal/filter"
)

func TestTypeAnnotatorRewritesLeaves(t *testing.T) {
	event := map[string]any{
		"a": 1,
		"b": []any{"x", map[string]any{"c": []byte{1}}},
		"d": nil,
		"e": map[string]any{},
	}
	got, err := filter.NewTypeAnnotator().Process(event)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := map[string]any{
		"a": []any{"int", 1},
		"b": []any{
			[]any{"string", "x"},
			map[string]any{"c": []any{"bytes", []byte{1}}},
		},
		"d": []any{"nil", nil},
		"e": map[string]any{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("annotated = %#v\nwant %#v", got, want)
	}
	if event["a"] != 1 {
		t.Fatal("input event must not be mutated")
	}
}

func TestTypeAnnotatorScalarEvent(t *testing.T) {
	got, err := filter.NewTypeAnnotator().Process(int64(5))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !reflect.DeepEqual(got, []any{"int64", int64(5)}) {
		t.Fatalf("annotated = %#v", got)
	}
}

func TestTypeAnnotatorRecursesTypedContainers(t *testing.T) {
	event := map[string]any{
		"ids":     []int64{1, 2},
		"names":   []string{"a"},
		"counts":  map[string]int{"zerg": 3},
		"handles": [][]byte{[]byte("s2ma")},
		"pos":     [2]int{4, 5},
		"blob":    []byte{7},
	}
	got, err := filter.NewTypeAnnotator().Process(event)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := map[string]any{
		"ids":     []any{[]any{"int64", int64(1)}, []any{"int64", int64(2)}},
		"names":   []any{[]any{"string", "a"}},
		"counts":  map[string]any{"zerg": []any{"int", 3}},
		"handles": []any{[]any{"bytes", []byte("s2ma")}},
		"pos":     []any{[]any{"int", 4}, []any{"int", 5}},
		"blob":    []any{"bytes", []byte{7}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("annotated = %#v\nwant %#v", got, want)
	}
}
