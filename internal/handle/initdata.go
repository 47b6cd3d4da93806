package handle

import (
	"fmt"
	"strings"

	"s2replay/internal/faults"
)

// cacheHandlesPath locates the handle list inside decoded init data.
var cacheHandlesPath = []string{"m_syncLobbyState", "m_gameDescription", "m_cacheHandles"}

// TranslateInitData replaces the cache handle list nested in initdata with
// the translated depot URIs, preserving order. The map is modified in place
// and returned for convenience.
func TranslateInitData(initdata map[string]any) (map[string]any, error) {
	parent, err := descend(initdata, cacheHandlesPath[:len(cacheHandlesPath)-1])
	if err != nil {
		return nil, err
	}
	key := cacheHandlesPath[len(cacheHandlesPath)-1]
	value, ok := parent[key]
	if !ok {
		return nil, structureError(cacheHandlesPath, "missing")
	}

	handles, err := handleList(value)
	if err != nil {
		return nil, err
	}

	translated := make([]any, 0, len(handles))
	for i, raw := range handles {
		uri, err := TranslateHandle(raw)
		if err != nil {
			return nil, fmt.Errorf("cache handle %d: %w", i, err)
		}
		translated = append(translated, uri)
	}
	parent[key] = translated
	return initdata, nil
}

func descend(root map[string]any, path []string) (map[string]any, error) {
	if root == nil {
		return nil, structureError(path[:1], "missing")
	}
	current := root
	for i, key := range path {
		next, ok := current[key]
		if !ok {
			return nil, structureError(path[:i+1], "missing")
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, structureError(path[:i+1], fmt.Sprintf("expected mapping, got %T", next))
		}
		current = m
	}
	return current, nil
}

func handleList(value any) ([][]byte, error) {
	switch v := value.(type) {
	case [][]byte:
		return v, nil
	case []any:
		out := make([][]byte, 0, len(v))
		for i, item := range v {
			switch raw := item.(type) {
			case []byte:
				out = append(out, raw)
			case string:
				out = append(out, []byte(raw))
			default:
				return nil, structureError(cacheHandlesPath, fmt.Sprintf("element %d is %T, expected bytes", i, item))
			}
		}
		return out, nil
	default:
		return nil, structureError(cacheHandlesPath, fmt.Sprintf("expected sequence, got %T", value))
	}
}

func structureError(path []string, message string) error {
	return faults.Wrap(faults.ErrStructure, "init data", strings.Join(path, "."), message, nil)
}
