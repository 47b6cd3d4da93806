package filter

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/encoding/charmap"
)

const defaultJSONIndent = 4

// JSONRenderer writes each event as a JSON document. Byte strings are decoded
// as ISO-8859-1 and all non-ASCII output is escaped, so arbitrary binary
// fields always encode.
type JSONRenderer struct {
	Base
	out  io.Writer
	api  jsoniter.API
	name string
}

// NewJSONRenderer writes indented JSON documents to out. A non-positive
// indent selects four spaces.
func NewJSONRenderer(out io.Writer, indent int) *JSONRenderer {
	if indent <= 0 {
		indent = defaultJSONIndent
	}
	api := jsoniter.Config{
		SortMapKeys:   true,
		EscapeHTML:    false,
		IndentionStep: indent,
	}.Froze()
	return &JSONRenderer{out: out, api: api, name: "json"}
}

// NewNDJSONRenderer writes one compact JSON document per line to out.
func NewNDJSONRenderer(out io.Writer) *JSONRenderer {
	api := jsoniter.Config{
		SortMapKeys: true,
		EscapeHTML:  false,
	}.Froze()
	return &JSONRenderer{out: out, api: api, name: "ndjson"}
}

func (j *JSONRenderer) Name() string { return j.name }

func (j *JSONRenderer) Process(event any) (any, error) {
	data, err := j.api.Marshal(textSafe(event))
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}
	data = append(escapeNonASCII(data), '\n')
	if _, err := j.out.Write(data); err != nil {
		return nil, fmt.Errorf("write event: %w", err)
	}
	return event, nil
}

func latin1String(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// ISO-8859-1 maps every byte; keep the raw bytes if that ever changes.
		return string(b)
	}
	return string(s)
}

// textSafe returns a copy of v with byte strings and invalid UTF-8 strings
// converted to text.
func textSafe(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, inner := range value {
			out[safeKey(k)] = textSafe(inner)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, inner := range value {
			out[i] = textSafe(inner)
		}
		return out
	case []byte:
		return latin1String(value)
	case string:
		if utf8.ValidString(value) {
			return value
		}
		return latin1String([]byte(value))
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return latin1String(rv.Bytes())
	}
	out, ok := walkContainer(v, textSafe)
	if !ok {
		return v
	}
	if m, isMap := out.(map[string]any); isMap {
		safe := make(map[string]any, len(m))
		for k, inner := range m {
			safe[safeKey(k)] = inner
		}
		return safe
	}
	return out
}

func safeKey(k string) string {
	if utf8.ValidString(k) {
		return k
	}
	return latin1String([]byte(k))
}

// escapeNonASCII rewrites every non-ASCII rune as a \uXXXX escape. Encoded
// JSON only carries such runes inside string literals, so the rewrite keeps
// the document valid.
func escapeNonASCII(data []byte) []byte {
	ascii := true
	for _, b := range data {
		if b >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return data
	}

	var b strings.Builder
	b.Grow(len(data) + 16)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			r -= 0x10000
			fmt.Fprintf(&b, `\u%04x\u%04x`, 0xD800+(r>>10), 0xDC00+(r&0x3FF))
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return []byte(b.String())
}
