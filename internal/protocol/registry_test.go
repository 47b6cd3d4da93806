package protocol_test

import (
	"errors"
	"slices"
	"testing"

	"s2replay/internal/faults"
	"s2replay/internal/protocol"
	"s2replay/internal/protocol/protocoltest"
)

func TestRegistryResolve(t *testing.T) {
	reg := protocol.NewRegistry(
		&protocoltest.Decoder{BuildNumber: 15405},
		&protocoltest.Decoder{BuildNumber: 88500},
		&protocoltest.Decoder{BuildNumber: 16117},
	)

	for _, build := range []int{15405, 16117, 88500} {
		d, err := reg.Resolve(build)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", build, err)
		}
		if d.Build() != build {
			t.Fatalf("Resolve(%d) returned build %d", build, d.Build())
		}
		if _, err := d.DecodeHeader(nil); err != nil {
			t.Fatalf("header decode on build %d: %v", build, err)
		}
	}

	_, err := reg.Resolve(16000)
	if !errors.Is(err, faults.ErrUnsupportedBuild) {
		t.Fatalf("expected unsupported build, got %v", err)
	}
	var buildErr *faults.UnsupportedBuildError
	if !errors.As(err, &buildErr) || buildErr.Build != 16000 {
		t.Fatalf("expected build 16000 in error, got %v", err)
	}
}

func TestRegistryBuildsSortedAndLatest(t *testing.T) {
	reg := protocol.NewRegistry(
		&protocoltest.Decoder{BuildNumber: 30},
		&protocoltest.Decoder{BuildNumber: 10},
		&protocoltest.Decoder{BuildNumber: 20},
	)
	if got := reg.Builds(); !slices.Equal(got, []int{10, 20, 30}) {
		t.Fatalf("Builds() = %v", got)
	}
	latest, err := reg.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.Build() != 30 {
		t.Fatalf("Latest build = %d, want 30", latest.Build())
	}
}

func TestRegistryLatestEmpty(t *testing.T) {
	if _, err := protocol.NewRegistry().Latest(); !errors.Is(err, faults.ErrUnsupportedBuild) {
		t.Fatalf("expected unsupported build on empty registry, got %v", err)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := protocol.NewRegistry(&protocoltest.Decoder{BuildNumber: 1})
	if err := reg.Register(&protocoltest.Decoder{BuildNumber: 1}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatal("expected nil registration error")
	}
}

func TestSupportsTrackerEvents(t *testing.T) {
	plain := &protocoltest.Decoder{BuildNumber: 1}
	if _, ok := protocol.SupportsTrackerEvents(plain); ok {
		t.Fatal("plain decoder must not report tracker support")
	}
	tracker := &protocoltest.TrackerDecoder{Decoder: &protocoltest.Decoder{BuildNumber: 2}}
	if _, ok := protocol.SupportsTrackerEvents(tracker); !ok {
		t.Fatal("tracker decoder must report tracker support")
	}
}
