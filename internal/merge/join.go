package merge

import (
	"fmt"

	"curator/internal/dataset"
	"curator/internal/services"
)

// Overlapping non-key column names are disambiguated with these suffixes.
const (
	leftSuffix  = "_x"
	rightSuffix = "_y"
)

// JoinStats describes how the right table matched the left one.
type JoinStats struct {
	Matched       int
	DuplicateKeys int
}

// Join performs a left outer join of left and right on the filename column.
func Join(left, right *dataset.Table) (*dataset.Table, JoinStats, error) {
	var stats JoinStats

	leftKey, ok := left.Index(dataset.ColumnFilename)
	if !ok {
		return nil, stats, services.Wrap(services.ErrMissingColumn, "", "left table", dataset.ColumnFilename, nil)
	}
	rightKey, ok := right.Index(dataset.ColumnFilename)
	if !ok {
		return nil, stats, services.Wrap(services.ErrMissingColumn, "", "right table", dataset.ColumnFilename, nil)
	}

	header, rightCols, err := joinHeader(left.Header, leftKey, right.Header, rightKey)
	if err != nil {
		return nil, stats, err
	}
	out := dataset.New(header)

	lookup := make(map[string]int, len(right.Rows))
	for i, row := range right.Rows {
		key := row[rightKey]
		if _, exists := lookup[key]; exists {
			stats.DuplicateKeys++
			continue
		}
		lookup[key] = i
	}

	for _, row := range left.Rows {
		merged := make([]string, 0, len(header))
		merged = append(merged, row...)
		if idx, found := lookup[row[leftKey]]; found {
			stats.Matched++
			match := right.Rows[idx]
			for _, col := range rightCols {
				merged = append(merged, match[col])
			}
		} else {
			for range rightCols {
				merged = append(merged, "")
			}
		}
		if len(merged) != len(header) {
			return nil, stats, fmt.Errorf("joined row has %d cells, header has %d", len(merged), len(header))
		}
		out.Rows = append(out.Rows, merged)
	}
	return out, stats, nil
}

// joinHeader returns the output header and the right-table column positions
// appended after the left columns. A suffixed name that collides with another
// output column is rejected.
func joinHeader(left []string, leftKey int, right []string, rightKey int) ([]string, []int, error) {
	leftNames := make(map[string]struct{}, len(left))
	for i, name := range left {
		if i != leftKey {
			leftNames[name] = struct{}{}
		}
	}
	rightNames := make(map[string]struct{}, len(right))
	for i, name := range right {
		if i != rightKey {
			rightNames[name] = struct{}{}
		}
	}

	header := make([]string, 0, len(left)+len(right)-1)
	for i, name := range left {
		if _, overlap := rightNames[name]; overlap && i != leftKey {
			name += leftSuffix
		}
		header = append(header, name)
	}

	cols := make([]int, 0, len(right))
	for i, name := range right {
		if i == rightKey {
			continue
		}
		if _, overlap := leftNames[name]; overlap {
			name += rightSuffix
		}
		header = append(header, name)
		cols = append(cols, i)
	}

	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, dup := seen[name]; dup {
			return nil, nil, services.Wrap(services.ErrMalformedValue, "", "join header",
				fmt.Sprintf("column %q appears twice after suffixing overlapping columns", name), nil)
		}
		seen[name] = struct{}{}
	}
	return header, cols, nil
}
