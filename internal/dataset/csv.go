package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"curator/internal/services"
)

// ReadOptions controls how cells are interpreted while loading a table.
type ReadOptions struct {
	// NAMarkers lists cell values that mean "missing". Matching cells are
	// stored as "". Empty means every cell is kept verbatim.
	NAMarkers []string
}

// Read loads a CSV file with a header row. A missing path is reported with
// services.ErrMissingFile.
func Read(path string, opts ReadOptions) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrMissingFile, "", "read csv", "", err)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	table, err := Decode(file, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}

// Decode parses CSV content from r. Column names are trimmed before repeated
// names are suffixed, so " fake" and "fake" become "fake" and "fake.1".
func Decode(r io.Reader, opts ReadOptions) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}
	table := New(dedupeHeader(header))

	markers := make(map[string]struct{}, len(opts.NAMarkers))
	for _, marker := range opts.NAMarkers {
		markers[marker] = struct{}{}
	}

	line := 1
	for {
		line++
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(markers) > 0 {
			for i, cell := range record {
				if _, ok := markers[strings.TrimSpace(cell)]; ok {
					record[i] = ""
				}
			}
		}
		table.Append(record)
	}
	return table, nil
}

// dedupeHeader suffixes repeated column names with .1, .2, ... so every
// column stays addressable.
func dedupeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		count := seen[name]
		seen[name] = count + 1
		if count == 0 {
			out[i] = name
			continue
		}
		candidate := name + "." + strconv.Itoa(count)
		for {
			if _, taken := seen[candidate]; !taken {
				break
			}
			count++
			candidate = name + "." + strconv.Itoa(count)
		}
		seen[candidate] = 1
		out[i] = candidate
	}
	return out
}

// Write stores the table as CSV with a header row. The file is written to a
// temporary sibling first and renamed into place.
func (t *Table) Write(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if err := t.Encode(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	tmpName = ""
	return nil
}

// Encode writes the table as CSV to w.
func (t *Table) Encode(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
