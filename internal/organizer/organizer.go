package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"curator/internal/dataset"
	"curator/internal/fileutil"
	"curator/internal/logging"
	"curator/internal/services"
)

const stageName = "organize"

// Options names the inputs and output of an organize run.
type Options struct {
	CSV       string
	ImageDir  string
	OutputDir string
	Rename    bool
	// ArtifactColumns are consulted only when Rename is set.
	ArtifactColumns []string
}

// CopyFailure records a row whose image could not be copied.
type CopyFailure struct {
	Filename string
	Err      error
}

func (f CopyFailure) Error() string {
	return fmt.Sprintf("copy %s: %v", f.Filename, f.Err)
}

func (f CopyFailure) Unwrap() error { return f.Err }

// Result summarizes an organize run.
type Result struct {
	OutputDir    string
	Rows         int
	Processed    int
	Missing      int
	Real         int
	Fake         int
	MissingFiles []string
	Failures     []CopyFailure
	Elapsed      time.Duration
}

// Failed returns the number of rows whose copy failed.
func (r Result) Failed() int { return len(r.Failures) }

// Run copies every image referenced by opts.CSV into OutputDir/real or
// OutputDir/fake.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	start := time.Now()
	ctx = services.WithStage(ctx, stageName)
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, stageName))

	result := Result{OutputDir: opts.OutputDir}
	if err := ctx.Err(); err != nil {
		return result, services.Annotate(stageName, "start", err)
	}

	if err := requireExists(opts.CSV, "csv"); err != nil {
		return result, err
	}
	if err := requireExists(opts.ImageDir, "image directory"); err != nil {
		return result, err
	}

	for _, partition := range []Partition{PartitionReal, PartitionFake} {
		dir := filepath.Join(opts.OutputDir, string(partition))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, services.Annotate(stageName, "prepare output", err)
		}
	}

	table, err := dataset.Read(opts.CSV, dataset.ReadOptions{})
	if err != nil {
		return result, services.Annotate(stageName, "csv", err)
	}
	table.TrimHeaders()
	table.TrimCells()
	if !table.HasColumn(dataset.ColumnFilename) {
		return result, services.Wrap(services.ErrMissingColumn, stageName, "csv", dataset.ColumnFilename, nil)
	}
	fakes, ok := table.CoerceFake()
	if !ok {
		return result, services.Wrap(services.ErrMissingColumn, stageName, "csv", dataset.ColumnFake, nil)
	}

	result.Rows = table.Len()
	logger.Info("processing rows", logging.Int("rows", result.Rows), logging.Bool("rename", opts.Rename))

	for i := range table.Rows {
		if err := ctx.Err(); err != nil {
			result.Elapsed = time.Since(start)
			return result, services.Annotate(stageName, "copy", err)
		}

		rec := table.Record(i)
		filename, _ := rec.Get(dataset.ColumnFilename)
		if filename == "" {
			continue
		}

		if !filepath.IsLocal(filename) {
			result.recordFailure(logger, filename, errors.New("filename escapes the image directory"))
			continue
		}

		source := filepath.Join(opts.ImageDir, filename)
		if _, err := os.Stat(source); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.Missing++
				result.MissingFiles = append(result.MissingFiles, filename)
				logger.Warn("image not found",
					logging.String("filename", filename),
					logging.String(logging.FieldEventType, "missing_image"),
				)
				continue
			}
			result.recordFailure(logger, filename, err)
			continue
		}

		partition := PartitionFor(fakes[i])
		target := filepath.Join(opts.OutputDir, string(partition), TargetName(rec, partition, opts.Rename, opts.ArtifactColumns))
		if err := fileutil.CopyFilePreserve(source, target); err != nil {
			result.recordFailure(logger, filename, err)
			continue
		}

		result.Processed++
		if partition == PartitionFake {
			result.Fake++
		} else {
			result.Real++
		}
		logger.Debug("copied image", logging.String("filename", filename), logging.String("target", target))
	}

	result.Elapsed = time.Since(start)
	logger.Info("organize complete",
		logging.Int("copied", result.Processed),
		logging.Int("missing", result.Missing),
		logging.Int("failed", result.Failed()),
		logging.String("output", opts.OutputDir),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func (r *Result) recordFailure(logger *slog.Logger, filename string, err error) {
	failure := CopyFailure{
		Filename: filename,
		Err:      services.Wrap(services.ErrCopyFailure, stageName, "copy", filename, err),
	}
	r.Failures = append(r.Failures, failure)
	logger.Error("copy failed",
		logging.String("filename", filename),
		logging.Error(err),
		logging.String(logging.FieldEventType, "copy_failed"),
	)
}

func requireExists(path, label string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrMissingFile, stageName, label, path, err)
		}
		return services.Annotate(stageName, label, err)
	}
	return nil
}
