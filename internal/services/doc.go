// Package services defines shared utilities consumed by the curation stages
// and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper so callers can tell a
//     missing input apart from an unexpected failure without parsing text.
//
// Use these helpers when wiring new stage logic so error reporting and
// observability stay uniform across merge, cleanup, and organize.
package services
