package cleanup

import (
	"strings"

	"curator/internal/dataset"
)

// DefaultMatchColumn is the annotation column that marks a fake as described.
const DefaultMatchColumn = "fake_or_real"

// keepColumns survive the wipe of real rows.
var keepColumns = map[string]struct{}{
	dataset.ColumnFilename: {},
	dataset.ColumnFake:     {},
}

// IsReal reports whether the record's fake indicator is zero. Unparsable
// indicators count as zero.
func IsReal(rec dataset.Record) bool {
	value, _ := rec.Get(dataset.ColumnFake)
	return dataset.ParseFake(value) == 0
}

// WipeRow blanks every column except filename and fake when the record is
// labeled real. It reports whether the record was wiped.
func WipeRow(rec dataset.Record) bool {
	if !IsReal(rec) {
		return false
	}
	for i, col := range rec.Header() {
		if _, keep := keepColumns[col]; keep {
			continue
		}
		rec.Cells[i] = ""
	}
	return true
}

// HasMatch reports whether column exists on the record and holds non-blank text.
func HasMatch(rec dataset.Record, column string) bool {
	value, ok := rec.Get(column)
	if !ok {
		return false
	}
	return strings.TrimSpace(value) != ""
}

// sortKey orders rows by fake descending, then has_match descending.
type sortKey struct {
	fake     float64
	hasMatch bool
}

func compareKeys(a, b sortKey) int {
	switch {
	case a.fake > b.fake:
		return -1
	case a.fake < b.fake:
		return 1
	case a.hasMatch == b.hasMatch:
		return 0
	case a.hasMatch:
		return -1
	default:
		return 1
	}
}
