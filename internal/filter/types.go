package filter

import (
	"fmt"
	"reflect"
)

// TypeAnnotator replaces every scalar leaf with a [type, value] pair while
// preserving the shape of mappings and sequences.
type TypeAnnotator struct {
	Base
}

func NewTypeAnnotator() *TypeAnnotator { return &TypeAnnotator{} }

func (t *TypeAnnotator) Name() string { return "types" }

func (t *TypeAnnotator) Process(event any) (any, error) {
	return annotate(event), nil
}

func annotate(v any) any {
	switch value := v.(type) {
	case nil, []byte:
		return []any{typeName(v), v}
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, inner := range value {
			out[k] = annotate(inner)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, inner := range value {
			out[i] = annotate(inner)
		}
		return out
	}
	if out, ok := walkContainer(v, annotate); ok {
		return out
	}
	return []any{typeName(v), v}
}

// walkContainer rebuilds typed maps, slices and arrays as map[string]any and
// []any, applying fn to every element. Byte sequences are not containers.
func walkContainer(v any, fn func(any) any) (any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = fn(iter.Value().Interface())
		}
		return out, true
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = fn(rv.Index(i).Interface())
		}
		return out, true
	default:
		return nil, false
	}
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case []byte:
		return "bytes"
	default:
		return fmt.Sprintf("%T", v)
	}
}
