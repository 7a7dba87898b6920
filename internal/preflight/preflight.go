package preflight

import (
	"curator/internal/config"
	"curator/internal/dataset"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable preflight check for cfg.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckTable("Metadata CSV", cfg.Merge.LeftCSV, dataset.ColumnFilename, dataset.ColumnFake),
		CheckTable("Annotation CSV", cfg.Merge.RightCSV, dataset.ColumnFilename),
		CheckOutputLocation("Merge output", cfg.Merge.OutputCSV),
	}

	// Chained inputs are written by the previous stage.
	if cfg.Cleanup.InputCSV != cfg.Merge.OutputCSV {
		results = append(results, CheckTable("Cleanup input", cfg.Cleanup.InputCSV, dataset.ColumnFilename, dataset.ColumnFake))
	}
	results = append(results, CheckOutputLocation("Cleanup output", cfg.Cleanup.OutputCSV))

	if cfg.Organize.CSV != cfg.Cleanup.OutputCSV {
		results = append(results, CheckTable("Organize CSV", cfg.Organize.CSV, dataset.ColumnFilename, dataset.ColumnFake))
	}
	results = append(results,
		CheckDirectoryAccess("Image directory", cfg.Organize.ImageDir, false),
		CheckOutputLocation("Organize output", cfg.Organize.OutputDir),
	)
	return results
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
