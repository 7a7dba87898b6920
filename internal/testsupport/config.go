package testsupport

import (
	"path/filepath"
	"testing"

	"curator/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose every path lives under a per-test temp
// directory. Stage files follow the default names so pipeline stages chain.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Merge.LeftCSV = filepath.Join(base, "image_metadata.csv")
	cfgVal.Merge.RightCSV = filepath.Join(base, "artifact_annotations.csv")
	cfgVal.Merge.OutputCSV = filepath.Join(base, "images_artifacts.csv")
	cfgVal.Cleanup.InputCSV = cfgVal.Merge.OutputCSV
	cfgVal.Cleanup.OutputCSV = filepath.Join(base, "images_artifacts_final.csv")
	cfgVal.Organize.CSV = cfgVal.Cleanup.OutputCSV
	cfgVal.Organize.ImageDir = filepath.Join(base, "stimuli")
	cfgVal.Organize.OutputDir = filepath.Join(base, "images_real_fake")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRename toggles label-based renaming in the organize stage.
func WithRename(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.Rename = enabled
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
