// Package logging assembles structured slog loggers and formatting helpers used
// across curator stages.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so stage code can automatically
// tag log lines with the stage name and run identifier. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every stage emits
// data with the same shape.
package logging
