package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"curator/internal/dataset"
	"curator/internal/logging"
	"curator/internal/services"
)

const stageName = "cleanup"

// Options names the input and output of a cleanup run.
type Options struct {
	Input  string
	Output string
	// MatchColumn defaults to DefaultMatchColumn.
	MatchColumn string
}

// Result summarizes a completed cleanup.
type Result struct {
	Output           string
	Rows             int
	Wiped            int
	FakesWithData    int
	FakesWithoutData int
	Reals            int
	MatchColumn      string
	Warnings         []string
	Elapsed          time.Duration
}

// Run wipes real rows, sorts the table, and writes it to opts.Output.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	start := time.Now()
	ctx = services.WithStage(ctx, stageName)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, stageName))

	matchColumn := opts.MatchColumn
	if matchColumn == "" {
		matchColumn = DefaultMatchColumn
	}
	result := Result{Output: opts.Output, MatchColumn: matchColumn}
	if err := ctx.Err(); err != nil {
		return result, services.Annotate(stageName, "start", err)
	}

	table, err := dataset.Read(opts.Input, dataset.ReadOptions{})
	if err != nil {
		return result, services.Annotate(stageName, "input", err)
	}
	table.TrimHeaders()

	fakes, ok := table.CoerceFake()
	if !ok {
		return result, services.Wrap(services.ErrMissingColumn, stageName, "input", dataset.ColumnFake, nil)
	}

	logger.Info("wiping extra data for real images", logging.Int("rows", table.Len()))
	keys := make([]sortKey, table.Len())
	for i := range table.Rows {
		rec := table.Record(i)
		if WipeRow(rec) {
			result.Wiped++
		}
		keys[i] = sortKey{fake: fakes[i]}
	}

	if table.HasColumn(matchColumn) {
		for i := range table.Rows {
			keys[i].hasMatch = HasMatch(table.Record(i), matchColumn)
		}
	} else {
		warning := fmt.Sprintf("%q column missing; sorting only by %s", matchColumn, dataset.ColumnFake)
		result.Warnings = append(result.Warnings, warning)
		logger.Warn("match column missing; sorting only by fake",
			logging.String("column", matchColumn),
			logging.String(logging.FieldEventType, "match_column_missing"),
		)
	}

	order := make([]int, table.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return compareKeys(keys[a], keys[b])
	})

	sorted := make([][]string, len(order))
	for pos, idx := range order {
		sorted[pos] = table.Rows[idx]
		switch key := keys[idx]; {
		case key.fake == 0:
			result.Reals++
		case key.hasMatch:
			result.FakesWithData++
		default:
			result.FakesWithoutData++
		}
	}
	table.Rows = sorted

	if err := ctx.Err(); err != nil {
		return result, services.Annotate(stageName, "write", err)
	}
	if err := table.Write(opts.Output); err != nil {
		return result, services.Annotate(stageName, "write", err)
	}

	result.Rows = table.Len()
	result.Elapsed = time.Since(start)
	logger.Info("cleanup complete",
		logging.String("output", opts.Output),
		logging.Int("fakes_with_data", result.FakesWithData),
		logging.Int("fakes_without_data", result.FakesWithoutData),
		logging.Int("reals", result.Reals),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
