package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateCleanup(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMerge() error {
	if strings.TrimSpace(c.Merge.LeftCSV) == "" {
		return errors.New("merge.left_csv must be set")
	}
	if strings.TrimSpace(c.Merge.RightCSV) == "" {
		return errors.New("merge.right_csv must be set")
	}
	if strings.TrimSpace(c.Merge.OutputCSV) == "" {
		return errors.New("merge.output_csv must be set")
	}
	if c.Merge.PreviewRows < 0 {
		return errors.New("merge.preview_rows must be zero or positive")
	}
	return nil
}

func (c *Config) validateCleanup() error {
	if strings.TrimSpace(c.Cleanup.InputCSV) == "" {
		return errors.New("cleanup.input_csv must be set")
	}
	if strings.TrimSpace(c.Cleanup.OutputCSV) == "" {
		return errors.New("cleanup.output_csv must be set")
	}
	switch c.Cleanup.MatchColumn {
	case "filename", "fake":
		return fmt.Errorf("cleanup.match_column cannot be %q", c.Cleanup.MatchColumn)
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if strings.TrimSpace(c.Organize.CSV) == "" {
		return errors.New("organize.csv must be set")
	}
	if strings.TrimSpace(c.Organize.ImageDir) == "" {
		return errors.New("organize.image_dir must be set")
	}
	if strings.TrimSpace(c.Organize.OutputDir) == "" {
		return errors.New("organize.output_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
