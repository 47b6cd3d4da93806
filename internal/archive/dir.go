package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"s2replay/internal/faults"
)

// Dir is a container backed by a directory of extracted members. The header
// is stored as an ordinary file named by HeaderMember.
type Dir struct {
	root         string
	headerMember string
}

var _ Archive = (*Dir)(nil)

// DirOpener returns an OpenFunc for extracted replay directories whose header
// is stored in headerMember. An empty name selects DefaultHeaderMember.
func DirOpener(headerMember string) OpenFunc {
	headerMember = strings.TrimSpace(headerMember)
	if headerMember == "" {
		headerMember = DefaultHeaderMember
	}
	return func(path string) (Archive, error) {
		return OpenDir(path, headerMember)
	}
}

// OpenDir opens the extracted replay directory at path.
func OpenDir(path, headerMember string) (*Dir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrArchiveOpen, "archive", "open", path, err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrArchiveOpen, "archive", "open", fmt.Sprintf("%s is not an extracted replay directory", path), nil)
	}
	if _, err := os.Stat(filepath.Join(path, headerMember)); err != nil {
		return nil, faults.Wrap(faults.ErrArchiveOpen, "archive", "open", fmt.Sprintf("header member %q", headerMember), err)
	}
	return &Dir{root: path, headerMember: headerMember}, nil
}

func (d *Dir) Header() ([]byte, error) {
	return d.ReadMember(d.headerMember)
}

func (d *Dir) ReadMember(name string) ([]byte, error) {
	if !filepath.IsLocal(name) {
		return nil, faults.Wrap(faults.ErrDecode, "archive", "read", fmt.Sprintf("invalid member name %q", name), nil)
	}
	data, err := os.ReadFile(filepath.Join(d.root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, faults.Wrap(faults.ErrDecode, "archive", "read", fmt.Sprintf("member %q not found", name), nil)
		}
		return nil, faults.Wrap(faults.ErrDecode, "archive", "read", name, err)
	}
	return data, nil
}

// Close is a no-op; Dir holds no open handles.
func (d *Dir) Close() error { return nil }
