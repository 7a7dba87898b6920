// Package pipeline runs the merge, cleanup, and organize stages in order.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"curator/internal/cleanup"
	"curator/internal/config"
	"curator/internal/logging"
	"curator/internal/merge"
	"curator/internal/organizer"
)

// Report holds the result of every stage that completed. A stage that did
// not run or failed leaves its field nil.
type Report struct {
	Merge    *merge.Result
	Cleanup  *cleanup.Result
	Organize *organizer.Result
	Elapsed  time.Duration
}

// MergeOptions maps configuration onto merge options.
func MergeOptions(cfg *config.Config) merge.Options {
	return merge.Options{
		Left:        cfg.Merge.LeftCSV,
		Right:       cfg.Merge.RightCSV,
		Output:      cfg.Merge.OutputCSV,
		NAMarkers:   cfg.Merge.NAMarkers,
		PreviewRows: cfg.Merge.PreviewRows,
	}
}

// CleanupOptions maps configuration onto cleanup options.
func CleanupOptions(cfg *config.Config) cleanup.Options {
	return cleanup.Options{
		Input:       cfg.Cleanup.InputCSV,
		Output:      cfg.Cleanup.OutputCSV,
		MatchColumn: cfg.Cleanup.MatchColumn,
	}
}

// OrganizeOptions maps configuration onto organizer options.
func OrganizeOptions(cfg *config.Config) organizer.Options {
	return organizer.Options{
		CSV:             cfg.Organize.CSV,
		ImageDir:        cfg.Organize.ImageDir,
		OutputDir:       cfg.Organize.OutputDir,
		Rename:          cfg.Organize.Rename,
		ArtifactColumns: cfg.Organize.ArtifactColumns,
	}
}

// Run executes the three stages with paths from cfg and stops at the first
// stage error.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Report, error) {
	start := time.Now()
	var report Report

	mergeResult, err := merge.Run(ctx, MergeOptions(cfg), logger)
	if err != nil {
		return finish(report, start), err
	}
	report.Merge = &mergeResult

	cleanupResult, err := cleanup.Run(ctx, CleanupOptions(cfg), logger)
	if err != nil {
		return finish(report, start), err
	}
	report.Cleanup = &cleanupResult

	organizeResult, err := organizer.Run(ctx, OrganizeOptions(cfg), logger)
	if err != nil {
		return finish(report, start), err
	}
	report.Organize = &organizeResult

	report = finish(report, start)
	logging.NewComponentLogger(logger, "pipeline").Info("pipeline complete", logging.Duration("elapsed", report.Elapsed))
	return report, nil
}

func finish(report Report, start time.Time) Report {
	report.Elapsed = time.Since(start)
	return report
}
