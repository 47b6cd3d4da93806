package protocol

import (
	"fmt"
	"slices"
	"sync"

	"s2replay/internal/faults"
)

// Registry maps base build numbers to decoders.
type Registry struct {
	mu       sync.RWMutex
	decoders map[int]Decoder
}

// NewRegistry returns a registry seeded with decoders. It panics on duplicate
// builds, which indicates a packaging mistake.
func NewRegistry(decoders ...Decoder) *Registry {
	r := &Registry{decoders: make(map[int]Decoder, len(decoders))}
	for _, d := range decoders {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds d under its declared build.
func (r *Registry) Register(d Decoder) error {
	if d == nil {
		return fmt.Errorf("protocol: register nil decoder")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	build := d.Build()
	if _, exists := r.decoders[build]; exists {
		return fmt.Errorf("protocol: build %d registered twice", build)
	}
	r.decoders[build] = d
	return nil
}

// Resolve returns the decoder declared for build. It fails with a
// *faults.UnsupportedBuildError when no decoder claims the build.
func (r *Registry) Resolve(build int) (Decoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decoders[build]
	if !ok {
		return nil, &faults.UnsupportedBuildError{Build: build}
	}
	return d, nil
}

// Latest returns the decoder with the highest build. The replay header layout
// is stable across builds, so this decoder is used to read the header before
// the replay's own build is known.
func (r *Registry) Latest() (Decoder, error) {
	builds := r.Builds()
	if len(builds) == 0 {
		return nil, faults.Wrap(faults.ErrUnsupportedBuild, "protocol", "latest", "no decoders registered", nil)
	}
	return r.Resolve(builds[len(builds)-1])
}

// Builds lists registered builds in ascending order.
func (r *Registry) Builds() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	builds := make([]int, 0, len(r.decoders))
	for build := range r.decoders {
		builds = append(builds, build)
	}
	slices.Sort(builds)
	return builds
}

var defaultRegistry = NewRegistry()

// Register makes d available through Default. Decoder packages call it from
// init; it panics on duplicate builds.
func Register(d Decoder) {
	if err := defaultRegistry.Register(d); err != nil {
		panic(err)
	}
}

// Default returns the process registry populated by Register.
func Default() *Registry {
	return defaultRegistry
}
