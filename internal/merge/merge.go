package merge

import (
	"context"
	"log/slog"
	"time"

	"curator/internal/dataset"
	"curator/internal/logging"
	"curator/internal/services"
)

const stageName = "merge"

// Options names the inputs and output of a merge run.
type Options struct {
	Left   string
	Right  string
	Output string
	// NAMarkers are cell values read as missing.
	NAMarkers []string
	// PreviewRows bounds Result.Preview.
	PreviewRows int
}

// Result summarizes a completed merge.
type Result struct {
	Output        string
	LeftRows      int
	RightRows     int
	Matched       int
	DuplicateKeys int
	OutputRows    int
	Columns       []string
	Preview       *dataset.Table
	Elapsed       time.Duration
}

// Run loads both tables, joins them, and writes the merged CSV. Nothing is
// written when any step fails.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	start := time.Now()
	ctx = services.WithStage(ctx, stageName)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, stageName))

	result := Result{Output: opts.Output}
	if err := ctx.Err(); err != nil {
		return result, services.Annotate(stageName, "start", err)
	}

	readOpts := dataset.ReadOptions{NAMarkers: opts.NAMarkers}
	left, err := dataset.Read(opts.Left, readOpts)
	if err != nil {
		return result, services.Annotate(stageName, "left table", err)
	}
	right, err := dataset.Read(opts.Right, readOpts)
	if err != nil {
		return result, services.Annotate(stageName, "right table", err)
	}

	logger.Info("cleaning whitespace",
		logging.String("left", opts.Left),
		logging.String("right", opts.Right),
	)
	for _, table := range []*dataset.Table{left, right} {
		table.TrimHeaders()
		table.TrimCells()
	}

	logger.Info("merging tables", logging.Int("left_rows", left.Len()), logging.Int("right_rows", right.Len()))
	merged, stats, err := Join(left, right)
	if err != nil {
		return result, services.Annotate(stageName, "join", err)
	}
	if stats.DuplicateKeys > 0 {
		logger.Warn("right table repeats filenames; first occurrence used",
			logging.Int("duplicates", stats.DuplicateKeys),
			logging.String(logging.FieldEventType, "duplicate_keys"),
		)
	}

	if err := ctx.Err(); err != nil {
		return result, services.Annotate(stageName, "write", err)
	}
	if err := merged.Write(opts.Output); err != nil {
		return result, services.Annotate(stageName, "write", err)
	}

	result.LeftRows = left.Len()
	result.RightRows = right.Len()
	result.Matched = stats.Matched
	result.DuplicateKeys = stats.DuplicateKeys
	result.OutputRows = merged.Len()
	result.Columns = merged.Header
	result.Preview = merged.Head(opts.PreviewRows)
	result.Elapsed = time.Since(start)

	logger.Info("merge complete",
		logging.String("output", opts.Output),
		logging.Int("rows", result.OutputRows),
		logging.Int("matched", result.Matched),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
