package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeMerge(); err != nil {
		return err
	}
	if err := c.normalizeCleanup(); err != nil {
		return err
	}
	if err := c.normalizeOrganize(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMerge() error {
	var err error
	if c.Merge.LeftCSV, err = expandPath(strings.TrimSpace(c.Merge.LeftCSV)); err != nil {
		return fmt.Errorf("merge.left_csv: %w", err)
	}
	if c.Merge.RightCSV, err = expandPath(strings.TrimSpace(c.Merge.RightCSV)); err != nil {
		return fmt.Errorf("merge.right_csv: %w", err)
	}
	if c.Merge.OutputCSV, err = expandPath(strings.TrimSpace(c.Merge.OutputCSV)); err != nil {
		return fmt.Errorf("merge.output_csv: %w", err)
	}
	c.Merge.NAMarkers = compactStrings(c.Merge.NAMarkers)
	return nil
}

func (c *Config) normalizeCleanup() error {
	var err error
	if c.Cleanup.InputCSV, err = expandPath(strings.TrimSpace(c.Cleanup.InputCSV)); err != nil {
		return fmt.Errorf("cleanup.input_csv: %w", err)
	}
	if c.Cleanup.OutputCSV, err = expandPath(strings.TrimSpace(c.Cleanup.OutputCSV)); err != nil {
		return fmt.Errorf("cleanup.output_csv: %w", err)
	}
	c.Cleanup.MatchColumn = strings.TrimSpace(c.Cleanup.MatchColumn)
	if c.Cleanup.MatchColumn == "" {
		c.Cleanup.MatchColumn = defaultCleanupMatch
	}
	return nil
}

func (c *Config) normalizeOrganize() error {
	var err error
	if c.Organize.CSV, err = expandPath(strings.TrimSpace(c.Organize.CSV)); err != nil {
		return fmt.Errorf("organize.csv: %w", err)
	}
	if c.Organize.ImageDir, err = expandPath(strings.TrimSpace(c.Organize.ImageDir)); err != nil {
		return fmt.Errorf("organize.image_dir: %w", err)
	}
	if c.Organize.OutputDir, err = expandPath(strings.TrimSpace(c.Organize.OutputDir)); err != nil {
		return fmt.Errorf("organize.output_dir: %w", err)
	}
	c.Organize.ArtifactColumns = compactStrings(c.Organize.ArtifactColumns)
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
