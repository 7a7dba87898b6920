package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Column names shared by every stage.
const (
	ColumnFilename = "filename"
	ColumnFake     = "fake"
)

// Table is a header plus rows of string cells. Every row has exactly
// len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// New returns an empty table with a copy of header.
func New(header []string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of the first column called name.
func (t *Table) Index(name string) (int, bool) {
	for i, col := range t.Header {
		if col == name {
			return i, true
		}
	}
	return -1, false
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Index(name)
	return ok
}

// Value returns the named cell of row i, or "" when the column is absent.
func (t *Table) Value(i int, name string) string {
	idx, ok := t.Index(name)
	if !ok {
		return ""
	}
	return t.Rows[i][idx]
}

// Append adds a row, padding or truncating it to the header width.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, fitRow(row, len(t.Header)))
}

// Record returns a named view over row i. Writes through the record modify
// the table.
func (t *Table) Record(i int) Record {
	return Record{header: t.Header, Cells: t.Rows[i]}
}

// TrimHeaders strips surrounding whitespace from every column name.
func (t *Table) TrimHeaders() {
	for i, col := range t.Header {
		t.Header[i] = strings.TrimSpace(col)
	}
}

// TrimCells strips surrounding whitespace from every cell.
func (t *Table) TrimCells() {
	for _, row := range t.Rows {
		for j, cell := range row {
			row[j] = strings.TrimSpace(cell)
		}
	}
}

// CoerceFake rewrites the fake column in canonical numeric form and returns
// the parsed values in row order. It reports false when the column is absent.
func (t *Table) CoerceFake() ([]float64, bool) {
	idx, ok := t.Index(ColumnFake)
	if !ok {
		return nil, false
	}
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = ParseFake(row[idx])
		row[idx] = FormatFake(values[i])
	}
	return values, true
}

// Record is a row paired with its table header.
type Record struct {
	header []string
	Cells  []string
}

// NewRecord builds a standalone record, mainly for tests of per-row rules.
func NewRecord(header, cells []string) Record {
	return Record{header: header, Cells: fitRow(cells, len(header))}
}

// Header returns the column names of the record.
func (r Record) Header() []string { return r.header }

// Get returns the named cell and whether the column exists.
func (r Record) Get(name string) (string, bool) {
	for i, col := range r.header {
		if col == name {
			return r.Cells[i], true
		}
	}
	return "", false
}

// Set overwrites the named cell. Unknown columns are ignored.
func (r Record) Set(name, value string) {
	for i, col := range r.header {
		if col == name {
			r.Cells[i] = value
			return
		}
	}
}

// ParseFake converts a fake-indicator cell into a number. Values that do not
// parse, including NaN and infinities, become 0.
func ParseFake(value string) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

// FormatFake renders a fake indicator in its shortest decimal form.
func FormatFake(value float64) string {
	if value == 0 {
		return "0"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func fitRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// Head returns a table sharing the header and the first n rows.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Header: t.Header, Rows: t.Rows[:n]}
}
