// Package main hosts the curator CLI entrypoint and command graph.
//
// The Cobra command tree maps each stage (merge, clean, organize) and the
// combined run onto the internal stage packages. It resolves configuration,
// applies flag overrides, sets up structured logging with a per-invocation
// run ID, and holds the run lock while a stage writes its outputs.
package main
