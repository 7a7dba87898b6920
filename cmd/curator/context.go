package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"curator/internal/config"
	"curator/internal/logging"
	"curator/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "", "load config", "", err)
			return
		}
		if level := c.logLevelOverride(); level != "" {
			cfg.Logging.Level = level
			if err := cfg.Validate(); err != nil {
				c.configErr = services.Wrap(services.ErrConfiguration, "", "log level", "", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "", "prepare directories", "", err)
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) logLevelOverride() string {
	if c.logLevelFlag == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
}

// stageFunc runs one unit of work with a prepared config and logger.
type stageFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error

// runLocked loads configuration, builds the logger, tags the context with a
// fresh run ID, and invokes fn while holding the run lock. SIGINT and SIGTERM
// cancel the context.
func (c *commandContext) runLocked(cmd *cobra.Command, fn stageFunc) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logCloser.Close()

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return services.Wrap(services.ErrBusy, "", "lock", cfg.LockPath(), nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = services.WithRunID(ctx, uuid.NewString())
	runLogger := logging.WithContext(ctx, logger)
	runLogger.Debug("run started",
		logging.String("command", cmd.Name()),
		logging.String("config", c.configPath),
		logging.String("lock", cfg.LockPath()),
	)
	if err := fn(ctx, cfg, logger); err != nil {
		runLogger.Error("command failed",
			logging.String("command", cmd.Name()),
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err),
		)
		return err
	}
	return nil
}

// overridePath replaces *target with the expanded flag value when the flag
// was set on the command line.
func overridePath(cmd *cobra.Command, flag, value string, target *string) error {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	expanded, err := config.ExpandPath(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("--%s: %w", flag, err)
	}
	if expanded == "" {
		return services.Wrap(services.ErrConfiguration, "", "--"+flag, "must not be empty", nil)
	}
	*target = expanded
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
