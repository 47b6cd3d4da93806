package protocol_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"s2replay/internal/faults"
	"s2replay/internal/protocol"
	"s2replay/internal/protocol/protocoltest"
)

func definingRegistry() *protocol.Registry {
	return protocol.NewRegistry(
		&protocoltest.DefiningDecoder{
			Decoder: &protocoltest.Decoder{BuildNumber: 100},
			Lines:   []string{"('_int',[(0,7)])", "('_blob',[(0,8)])", "('_bool',[])"},
		},
		&protocoltest.DefiningDecoder{
			Decoder: &protocoltest.Decoder{BuildNumber: 200},
			Lines:   []string{"('_int',[(0,7)])", "('_blob',[(0,9)])", "('_bool',[])"},
		},
		&protocoltest.Decoder{BuildNumber: 300},
	)
}

func TestDiffUnified(t *testing.T) {
	var buf bytes.Buffer
	if err := protocol.Diff(&buf, definingRegistry(), 100, 200, protocol.DiffOptions{}); err != nil {
		t.Fatalf("Diff: %v", err)
	}
	out := buf.String()
	for _, fragment := range []string{"--- protocol100", "+++ protocol200", "-('_blob',[(0,8)])\n", "+('_blob',[(0,9)])\n"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in diff output:\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected color codes in plain diff: %q", out)
	}
}

func TestDiffColorized(t *testing.T) {
	var buf bytes.Buffer
	if err := protocol.Diff(&buf, definingRegistry(), 100, 200, protocol.DiffOptions{Colorize: true}); err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[32m+('_blob',[(0,9)])\x1b[0m\n") {
		t.Fatalf("expected green addition, got %q", buf.String())
	}
}

func TestDiffIdentical(t *testing.T) {
	var buf bytes.Buffer
	if err := protocol.Diff(&buf, definingRegistry(), 100, 100, protocol.DiffOptions{}); err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for identical protocols, got %q", buf.String())
	}
}

func TestDiffErrors(t *testing.T) {
	reg := definingRegistry()
	if err := protocol.Diff(&bytes.Buffer{}, reg, 100, 999, protocol.DiffOptions{}); !errors.Is(err, faults.ErrUnsupportedBuild) {
		t.Fatalf("expected unsupported build, got %v", err)
	}
	err := protocol.Diff(&bytes.Buffer{}, reg, 100, 300, protocol.DiffOptions{})
	if err == nil || !strings.Contains(err.Error(), "does not expose type definitions") {
		t.Fatalf("expected missing definitions error, got %v", err)
	}
}
