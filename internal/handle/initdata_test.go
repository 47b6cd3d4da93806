package handle_test

import (
	"errors"
	"testing"

	"s2replay/internal/faults"
	"s2replay/internal/handle"
)

func initData(handles any) map[string]any {
	return map[string]any{
		"m_syncLobbyState": map[string]any{
			"m_gameDescription": map[string]any{
				"m_cacheHandles": handles,
				"m_gameSpeed":    4,
			},
		},
	}
}

func cacheHandles(t *testing.T, data map[string]any) []any {
	t.Helper()
	desc := data["m_syncLobbyState"].(map[string]any)["m_gameDescription"].(map[string]any)
	list, ok := desc["m_cacheHandles"].([]any)
	if !ok {
		t.Fatalf("expected []any handles, got %T", desc["m_cacheHandles"])
	}
	return list
}

func TestTranslateInitDataReplacesHandlesInOrder(t *testing.T) {
	data := initData([]any{
		[]byte("s2ma\x00\x00EU\x01\x02"),
		[]byte("s2mh\x00\x00US\xff"),
	})

	out, err := handle.TranslateInitData(data)
	if err != nil {
		t.Fatalf("TranslateInitData: %v", err)
	}
	got := cacheHandles(t, out)
	want := []string{
		"http://eu.depot.battle.net:1119/0102.s2ma",
		"http://us.depot.battle.net:1119/ff.s2mh",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d handles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("handle %d = %v, want %q", i, got[i], want[i])
		}
	}

	// The input map is rewritten in place.
	if cacheHandles(t, data)[0] != want[0] {
		t.Fatal("expected in-place rewrite of the input map")
	}
	desc := data["m_syncLobbyState"].(map[string]any)["m_gameDescription"].(map[string]any)
	if desc["m_gameSpeed"] != 4 {
		t.Fatal("sibling fields must be preserved")
	}
}

func TestTranslateInitDataAcceptsByteSlices(t *testing.T) {
	data := initData([][]byte{[]byte("s2ma\x00\x00KR")})
	out, err := handle.TranslateInitData(data)
	if err != nil {
		t.Fatalf("TranslateInitData: %v", err)
	}
	if got := cacheHandles(t, out)[0]; got != "http://kr.depot.battle.net:1119/.s2ma" {
		t.Fatalf("unexpected handle %v", got)
	}
}

func TestTranslateInitDataEmptyList(t *testing.T) {
	out, err := handle.TranslateInitData(initData([]any{}))
	if err != nil {
		t.Fatalf("TranslateInitData: %v", err)
	}
	if len(cacheHandles(t, out)) != 0 {
		t.Fatal("expected empty handle list")
	}
}

func TestTranslateInitDataMissingPath(t *testing.T) {
	cases := map[string]map[string]any{
		"nil":               nil,
		"no lobby":          {},
		"lobby not mapping": {"m_syncLobbyState": 1},
		"no description":    {"m_syncLobbyState": map[string]any{}},
		"no handles":        {"m_syncLobbyState": map[string]any{"m_gameDescription": map[string]any{}}},
		"handles scalar":    initData(7),
		"handle not bytes":  initData([]any{42}),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := handle.TranslateInitData(data); !errors.Is(err, faults.ErrStructure) {
				t.Fatalf("expected structure error, got %v", err)
			}
		})
	}
}

func TestTranslateInitDataShortHandle(t *testing.T) {
	_, err := handle.TranslateInitData(initData([]any{[]byte("s2")}))
	if !errors.Is(err, faults.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
