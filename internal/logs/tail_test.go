package logs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"curator/internal/logs"
)

func TestLastReturnsTrailingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curator.log")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 2, want: []string{"b", "c"}},
		{limit: 3, want: []string{"a", "b", "c"}},
		{limit: 10, want: []string{"a", "b", "c"}},
		{limit: 0, want: nil},
	}
	for _, tc := range tests {
		got, err := logs.Last(path, tc.limit)
		if err != nil {
			t.Fatalf("Last(%d): %v", tc.limit, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Last(%d) mismatch (-want +got):\n%s", tc.limit, diff)
		}
	}
}

func TestLastMissingFile(t *testing.T) {
	got, err := logs.Last(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("expected no lines and no error, got %v, %v", got, err)
	}
}

func TestLastRejectsDirectory(t *testing.T) {
	if _, err := logs.Last(t.TempDir(), 5); err == nil {
		t.Fatal("expected error for directory path")
	}
}
