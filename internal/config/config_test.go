package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"curator/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	workDir := t.TempDir()
	t.Chdir(workDir)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "curator")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if !filepath.IsAbs(cfg.Merge.LeftCSV) || filepath.Base(cfg.Merge.LeftCSV) != "image_metadata.csv" {
		t.Fatalf("unexpected merge left csv: %q", cfg.Merge.LeftCSV)
	}
	if filepath.Base(cfg.Cleanup.OutputCSV) != "images_artifacts_final.csv" {
		t.Fatalf("unexpected cleanup output: %q", cfg.Cleanup.OutputCSV)
	}
	if cfg.Cleanup.MatchColumn != "fake_or_real" {
		t.Fatalf("unexpected match column: %q", cfg.Cleanup.MatchColumn)
	}
	if cfg.Organize.Rename {
		t.Fatal("expected rename disabled by default")
	}
	if len(cfg.Organize.ArtifactColumns) != 5 {
		t.Fatalf("unexpected artifact columns: %v", cfg.Organize.ArtifactColumns)
	}
	if len(cfg.Merge.NAMarkers) == 0 {
		t.Fatal("expected default NA markers")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if cfg.LockPath() != filepath.Join(wantState, "curator.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "curator.toml")

	type payload struct {
		Merge struct {
			LeftCSV   string   `toml:"left_csv"`
			NAMarkers []string `toml:"na_markers"`
		} `toml:"merge"`
		Organize struct {
			Rename bool `toml:"rename"`
		} `toml:"organize"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Merge.LeftCSV = filepath.Join(tempDir, "meta.csv")
	custom.Merge.NAMarkers = []string{" NA ", "", "NA", "null"}
	custom.Organize.Rename = true
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Merge.LeftCSV != filepath.Join(tempDir, "meta.csv") {
		t.Fatalf("unexpected left csv: %q", cfg.Merge.LeftCSV)
	}
	if got := strings.Join(cfg.Merge.NAMarkers, ","); got != "NA,null" {
		t.Fatalf("unexpected NA markers: %q", got)
	}
	if !cfg.Organize.Rename {
		t.Fatal("expected rename enabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if filepath.Base(cfg.Merge.RightCSV) != "artifact_annotations.csv" {
		t.Fatalf("expected default right csv to survive partial config, got %q", cfg.Merge.RightCSV)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "curator.toml")
	if err := os.WriteFile(configPath, []byte("[merge]\nleft = \"x.csv\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{name: "log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, want: "logging.format"},
		{name: "log level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }, want: "logging.level"},
		{name: "preview rows", mutate: func(c *config.Config) { c.Merge.PreviewRows = -1 }, want: "merge.preview_rows"},
		{name: "match column", mutate: func(c *config.Config) { c.Cleanup.MatchColumn = "fake" }, want: "cleanup.match_column"},
		{name: "image dir", mutate: func(c *config.Config) { c.Organize.ImageDir = " " }, want: "organize.image_dir"},
		{name: "left csv", mutate: func(c *config.Config) { c.Merge.LeftCSV = "" }, want: "merge.left_csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Cleanup.MatchColumn != "fake_or_real" {
		t.Fatalf("unexpected match column from sample: %q", cfg.Cleanup.MatchColumn)
	}
}
