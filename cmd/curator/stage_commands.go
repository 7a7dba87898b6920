package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"curator/internal/cleanup"
	"curator/internal/config"
	"curator/internal/merge"
	"curator/internal/organizer"
	"curator/internal/pipeline"
	"curator/internal/services"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var left, right, output string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Join image metadata with artifact annotations on filename",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runLocked(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				if err := overridePath(cmd, "left", left, &cfg.Merge.LeftCSV); err != nil {
					return err
				}
				if err := overridePath(cmd, "right", right, &cfg.Merge.RightCSV); err != nil {
					return err
				}
				if err := overridePath(cmd, "output", output, &cfg.Merge.OutputCSV); err != nil {
					return err
				}
				res, err := merge.Run(runCtx, pipeline.MergeOptions(cfg), logger)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				writeMergeSummary(out, res, shouldColorize(out))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&left, "left", "", "Image metadata CSV")
	cmd.Flags().StringVar(&right, "right", "", "Artifact annotation CSV")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Merged CSV destination")
	return cmd
}

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var input, output, matchColumn string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Wipe annotations on real images and sort the merged table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runLocked(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				if err := overridePath(cmd, "input", input, &cfg.Cleanup.InputCSV); err != nil {
					return err
				}
				if err := overridePath(cmd, "output", output, &cfg.Cleanup.OutputCSV); err != nil {
					return err
				}
				if cmd.Flags().Changed("match-column") {
					cfg.Cleanup.MatchColumn = matchColumn
					if err := cfg.Validate(); err != nil {
						return services.Wrap(services.ErrConfiguration, "", "--match-column", "", err)
					}
				}
				res, err := cleanup.Run(runCtx, pipeline.CleanupOptions(cfg), logger)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				writeCleanupSummary(out, res, shouldColorize(out))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Merged CSV to clean")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Cleaned CSV destination")
	cmd.Flags().StringVar(&matchColumn, "match-column", "", "Annotation column that marks a described fake")
	return cmd
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var csvPath, images, output string
	var rename bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Copy images into real/ and fake/ folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runLocked(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				if err := overridePath(cmd, "csv", csvPath, &cfg.Organize.CSV); err != nil {
					return err
				}
				if err := overridePath(cmd, "images", images, &cfg.Organize.ImageDir); err != nil {
					return err
				}
				if err := overridePath(cmd, "output", output, &cfg.Organize.OutputDir); err != nil {
					return err
				}
				if cmd.Flags().Changed("rename") {
					cfg.Organize.Rename = rename
				}
				res, err := organizer.Run(runCtx, pipeline.OrganizeOptions(cfg), logger)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				writeOrganizeSummary(out, res, shouldColorize(out))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Cleaned CSV listing the images")
	cmd.Flags().StringVar(&images, "images", "", "Directory holding the source images")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination for the real/ and fake/ folders")
	cmd.Flags().BoolVar(&rename, "rename", false, "Embed label, generator, and artifact flags in copied file names")
	return cmd
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run merge, clean, and organize in sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runLocked(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				report, err := pipeline.Run(runCtx, cfg, logger)
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				if report.Merge != nil {
					writeMergeSummary(out, *report.Merge, colorize)
				}
				if report.Cleanup != nil {
					writeCleanupSummary(out, *report.Cleanup, colorize)
				}
				if report.Organize != nil {
					writeOrganizeSummary(out, *report.Organize, colorize)
				}
				return err
			})
		},
	}
}
