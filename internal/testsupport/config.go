package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"s2replay/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log file lives in a per-test
// temp directory, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "s2replay.log")

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithStatsStyle sets output.stats_style.
func WithStatsStyle(style string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.StatsStyle = style
	}
}

// WithHeaderMember sets archive.header.
func WithHeaderMember(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Archive.Header = name
	}
}

// WriteConfig encodes cfg as TOML into the test's temp directory and returns
// the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create config: %v", err)
	}
	defer file.Close()
	if err := cfg.Encode(file); err != nil {
		t.Fatalf("encode config: %v", err)
	}
	return path
}
