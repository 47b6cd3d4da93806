package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

// DiffOptions controls protocol diff rendering.
type DiffOptions struct {
	Context  int
	Colorize bool
}

// Diff writes a unified diff of the type definitions of builds a and b.
// Both decoders must implement Definer. Identical definitions produce no
// output.
func Diff(w io.Writer, r *Registry, a, b int, opts DiffOptions) error {
	left, err := definitions(r, a)
	if err != nil {
		return err
	}
	right, err := definitions(r, b)
	if err != nil {
		return err
	}

	contextLines := opts.Context
	if contextLines <= 0 {
		contextLines = 3
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        left,
		B:        right,
		FromFile: fmt.Sprintf("protocol%d", a),
		ToFile:   fmt.Sprintf("protocol%d", b),
		Context:  contextLines,
	})
	if err != nil {
		return fmt.Errorf("diff protocols %d and %d: %w", a, b, err)
	}
	if !opts.Colorize {
		_, err = io.WriteString(w, text)
		return err
	}
	for _, line := range difflib.SplitLines(text) {
		if _, err := io.WriteString(w, colorizeLine(line)); err != nil {
			return err
		}
	}
	return nil
}

func definitions(r *Registry, build int) ([]string, error) {
	d, err := r.Resolve(build)
	if err != nil {
		return nil, err
	}
	definer, ok := SupportsDefinitions(d)
	if !ok {
		return nil, fmt.Errorf("protocol %d does not expose type definitions", build)
	}
	defs := definer.Definitions()
	lines := make([]string, 0, len(defs))
	for _, def := range defs {
		lines = append(lines, strings.TrimRight(def, "\n")+"\n")
	}
	return lines, nil
}

func colorizeLine(line string) string {
	body := strings.TrimSuffix(line, "\n")
	if body == "" {
		return line
	}
	var color string
	switch {
	case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
		return line
	case strings.HasPrefix(body, "@@"):
		color = ansiBlue
	case strings.HasPrefix(body, "+"):
		color = ansiGreen
	case strings.HasPrefix(body, "-"):
		color = ansiRed
	default:
		return line
	}
	return color + body + ansiReset + "\n"
}
