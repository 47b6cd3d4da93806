package filter_test

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"s2replay/internal/filter"
)

func nestedEvent() map[string]any {
	return map[string]any{
		"m_title": []byte("Caf\xe9"),
		"m_players": []any{
			map[string]any{"m_name": "Zerg", "m_toon": map[string]any{"m_id": 7}},
		},
		"m_handles": [][]byte{[]byte("s2ma")},
		"m_note":    "snow \u2603",
	}
}

func TestJSONRendererIndentsAndEscapes(t *testing.T) {
	var out bytes.Buffer
	r := filter.NewJSONRenderer(&out, 0)
	event := nestedEvent()
	got, err := r.Process(event)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got == nil {
		t.Fatal("renderer must return the event")
	}
	text := out.String()
	if !strings.Contains(text, "\n    \"m_handles\": [") {
		t.Fatalf("expected four-space indentation, got:\n%s", text)
	}
	if !strings.Contains(text, `"Caf\u00e9"`) {
		t.Fatalf("expected latin-1 byte string escaped, got:\n%s", text)
	}
	if !strings.Contains(text, `"snow \u2603"`) {
		t.Fatalf("expected non-ascii escape, got:\n%s", text)
	}
	for _, b := range out.Bytes() {
		if b >= 0x80 {
			t.Fatalf("output contains non-ascii byte %#x", b)
		}
	}

	var decoded map[string]any
	if err := jsoniter.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["m_title"] != "Caf\u00e9" {
		t.Fatalf("decoded title = %v", decoded["m_title"])
	}
}

func TestNDJSONRendererOneLinePerEvent(t *testing.T) {
	var out bytes.Buffer
	r := filter.NewNDJSONRenderer(&out)
	for range 3 {
		if _, err := r.Process(nestedEvent()); err != nil {
			t.Fatalf("Process: %v", err)
		}
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out.String())
	}
	for _, line := range lines {
		if strings.Contains(line, "  ") {
			t.Fatalf("expected compact JSON, got %q", line)
		}
		if !jsoniter.Valid([]byte(line)) {
			t.Fatalf("invalid JSON line %q", line)
		}
	}
}

func TestPrettyRendererDumpsSortedKeys(t *testing.T) {
	var out bytes.Buffer
	r := filter.NewPrettyRenderer(&out)
	event := map[string]any{"zeta": 1, "alpha": "first"}
	got, err := r.Process(event)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got == nil {
		t.Fatal("renderer must return the event")
	}
	text := out.String()
	alpha := strings.Index(text, `"alpha"`)
	zeta := strings.Index(text, `"zeta"`)
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Fatalf("expected sorted keys in dump, got:\n%s", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Fatalf("expected trailing newline, got %q", text)
	}
}

func TestJSONRendererTextSafeTypedContainers(t *testing.T) {
	type blob []byte
	var out bytes.Buffer
	r := filter.NewNDJSONRenderer(&out)
	event := map[string]any{
		"names":  []string{"Caf\xe9"},
		"keys":   map[string]blob{"k": blob("s2ma")},
		"counts": []int64{1, 2},
	}
	if _, err := r.Process(event); err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := `{"counts":[1,2],"keys":{"k":"s2ma"},"names":["Caf\u00e9"]}` + "\n"
	if out.String() != want {
		t.Fatalf("rendered %q, want %q", out.String(), want)
	}
}
