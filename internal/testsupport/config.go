package testsupport

import (
	"path/filepath"
	"testing"

	"cinebob/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Telegram.Token = "12345:testsecret"
	cfgVal.KeepAlive.Enabled = false
	cfgVal.KeepAlive.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("create config directories: %v", err)
	}

	return builder.cfg
}

// WithToken sets the Telegram bot token on the test config.
func WithToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Telegram.Token = token
	}
}

// WithRawCSV points the catalog loader at a raw dataset file.
func WithRawCSV(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.RawCSVPath = path
	}
}

// WithPopularLimits overrides the popular command default and cap.
func WithPopularLimits(count, maximum int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Commands.PopularCount = count
		b.cfg.Commands.PopularMax = maximum
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
