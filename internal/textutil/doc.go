// Package textutil provides small text helpers shared by the curation stages.
//
// The primary use cases are:
//   - Sanitizing label text so it can be embedded in file names
//   - Interpreting free-form annotation flags ("1", "true", "Yes") as booleans
//   - Joining name parts without doubled separators
package textutil
