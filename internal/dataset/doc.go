// Package dataset holds the in-memory table every curation stage operates on.
//
// A Table is an ordered header plus string rows; there is no null value, so
// anything read as missing is stored as the empty string. Read and Write
// handle the CSV framing (header row, comma delimiter, no index column) and
// Write replaces its target atomically so a failed stage never leaves a
// truncated file behind.
package dataset
