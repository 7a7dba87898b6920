package dataset_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"curator/internal/dataset"
	"curator/internal/services"
)

func TestDecodePadsRaggedRowsAndStripsBOM(t *testing.T) {
	input := "\ufefffilename,fake,note\na.jpg,1\nb.jpg,0,x,extra\n\nc.jpg,,\n"
	table, err := dataset.Decode(strings.NewReader(input), dataset.ReadOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := &dataset.Table{
		Header: []string{"filename", "fake", "note"},
		Rows: [][]string{
			{"a.jpg", "1", ""},
			{"b.jpg", "0", "x"},
			{"c.jpg", "", ""},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNAMarkersBecomeEmpty(t *testing.T) {
	input := "filename,generator,score\na.jpg,NA,NaN\nb.jpg, null ,3\nc.jpg,NAB,nan\n"
	table, err := dataset.Decode(strings.NewReader(input), dataset.ReadOptions{NAMarkers: []string{"NA", "NaN", "null", "nan"}})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := [][]string{
		{"a.jpg", "", ""},
		{"b.jpg", "", "3"},
		{"c.jpg", "NAB", ""},
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeWithoutMarkersKeepsText(t *testing.T) {
	table, err := dataset.Decode(strings.NewReader("filename,generator\na.jpg,NA\n"), dataset.ReadOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := table.Value(0, "generator"); got != "NA" {
		t.Fatalf("generator = %q, want NA", got)
	}
}

func TestDecodeDeduplicatesHeader(t *testing.T) {
	table, err := dataset.Decode(strings.NewReader("a,b,a,a\n1,2,3,4\n"), dataset.ReadOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "a.1", "a.2"}, table.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTrimsHeaderBeforeDeduplicating(t *testing.T) {
	table, err := dataset.Decode(strings.NewReader("filename, fake,fake \na.jpg,1,0\n"), dataset.ReadOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"filename", "fake", "fake.1"}, table.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	table.TrimHeaders()
	if diff := cmp.Diff([]string{"filename", "fake", "fake.1"}, table.Header); diff != "" {
		t.Fatalf("header changed by TrimHeaders (-want +got):\n%s", diff)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	if _, err := dataset.Decode(strings.NewReader(""), dataset.ReadOptions{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := dataset.Read(filepath.Join(t.TempDir(), "absent.csv"), dataset.ReadOptions{})
	if !errors.Is(err, services.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestTrimHeadersAndCells(t *testing.T) {
	table, err := dataset.Decode(strings.NewReader(" filename , fake \n a.jpg , 1 \n"), dataset.ReadOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	table.TrimHeaders()
	table.TrimCells()
	want := &dataset.Table{Header: []string{"filename", "fake"}, Rows: [][]string{{"a.jpg", "1"}}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteRoundTripAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "table.csv")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale content that is longer than the new table\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	table := dataset.New([]string{"filename", "note"})
	table.Append([]string{"a.jpg", "has, comma"})
	table.Append([]string{"b.jpg"})
	if err := table.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "filename,note\na.jpg,\"has, comma\"\nb.jpg,\n"
	if string(content) != want {
		t.Fatalf("content = %q, want %q", content, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the output file, got %d entries", len(entries))
	}

	back, err := dataset.Read(path, dataset.ReadOptions{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(table, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := dataset.New([]string{"filename", "fake"}).Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != "filename,fake\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestParseFake(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{" 1 ", 1},
		{"0", 0},
		{"1.0", 1},
		{"0.5", 0.5},
		{"", 0},
		{"yes", 0},
		{"NaN", 0},
		{"inf", 0},
		{"1e400", 0},
		{"-1", -1},
	}
	for _, tt := range tests {
		if got := dataset.ParseFake(tt.in); got != tt.want {
			t.Errorf("ParseFake(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatFake(t *testing.T) {
	for in, want := range map[float64]string{1: "1", 0: "0", 0.5: "0.5", -2: "-2"} {
		if got := dataset.FormatFake(in); got != want {
			t.Errorf("FormatFake(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestCoerceFake(t *testing.T) {
	table := dataset.New([]string{"filename", "fake"})
	table.Append([]string{"a.jpg", "1.0"})
	table.Append([]string{"b.jpg", "junk"})
	values, ok := table.CoerceFake()
	if !ok {
		t.Fatal("expected fake column")
	}
	if diff := cmp.Diff([]float64{1, 0}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if table.Rows[0][1] != "1" || table.Rows[1][1] != "0" {
		t.Fatalf("expected canonical values, got %v", table.Rows)
	}

	if _, ok := dataset.New([]string{"filename"}).CoerceFake(); ok {
		t.Fatal("expected missing fake column to be reported")
	}
}

func TestRecordGetSet(t *testing.T) {
	rec := dataset.NewRecord([]string{"filename", "fake", "note"}, []string{"a.jpg", "1"})
	if v, ok := rec.Get("note"); !ok || v != "" {
		t.Fatalf("note = %q %v", v, ok)
	}
	rec.Set("note", "x")
	rec.Set("absent", "ignored")
	if diff := cmp.Diff([]string{"a.jpg", "1", "x"}, rec.Cells); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	if _, ok := rec.Get("absent"); ok {
		t.Fatal("expected absent column to be reported")
	}
}

func TestHead(t *testing.T) {
	table := dataset.New([]string{"filename"})
	for _, name := range []string{"a", "b", "c"} {
		table.Append([]string{name})
	}
	if got := table.Head(2).Len(); got != 2 {
		t.Fatalf("Head(2).Len() = %d", got)
	}
	if got := table.Head(10).Len(); got != 3 {
		t.Fatalf("Head(10).Len() = %d", got)
	}
	if got := table.Head(-1).Len(); got != 0 {
		t.Fatalf("Head(-1).Len() = %d", got)
	}
}
