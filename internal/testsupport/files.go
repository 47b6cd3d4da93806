package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"s2replay/internal/archive"
)

// WriteReplayDir creates an extracted replay directory containing members,
// keyed by member name. A header member is added when absent.
func WriteReplayDir(t testing.TB, members map[string][]byte) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "replay")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir replay dir: %v", err)
	}
	if _, ok := members[archive.DefaultHeaderMember]; !ok {
		WriteFile(t, filepath.Join(dir, archive.DefaultHeaderMember), []byte("header"))
	}
	for name, data := range members {
		WriteFile(t, filepath.Join(dir, name), data)
	}
	return dir
}

// StandardMembers returns every default member name mapped to its own name
// as content, so decoders can assert which member they were handed.
func StandardMembers() map[string][]byte {
	names := []string{
		archive.DefaultHeaderMember,
		archive.DefaultDetailsMember,
		archive.DefaultInitDataMember,
		archive.DefaultGameEventsMember,
		archive.DefaultMessageEventsMember,
		archive.DefaultTrackerEventsMember,
		archive.DefaultAttributesEventsMember,
	}
	members := make(map[string][]byte, len(names))
	for _, name := range names {
		members[name] = []byte(name)
	}
	return members
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
