// Package merge joins image metadata with artifact annotations.
//
// The left table (metadata) drives the output: every left row appears exactly
// once, extended with the columns of the first right-table row sharing its
// filename. Headers and cells of both inputs are whitespace-trimmed before
// the join and every missing value is written as the empty string.
package merge
