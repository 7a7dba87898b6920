package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"  sdxl 1.0 ":      "sdxl 1.0",
		"stable/diffusion": "stable-diffusion",
		"mid:journey?":     "mid-journey",
		`"quoted"|<x>`:     "quotedx",
		"":                 "",
	}
	for in, want := range tests {
		if got := SanitizeFileName(in); got != want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJoinNonEmpty(t *testing.T) {
	if got := JoinNonEmpty("_", "fake", "", " ", "anatomical", "a.jpg"); got != "fake_anatomical_a.jpg" {
		t.Fatalf("JoinNonEmpty = %q", got)
	}
	if got := JoinNonEmpty("_"); got != "" {
		t.Fatalf("JoinNonEmpty() = %q", got)
	}
}

func TestIsTruthy(t *testing.T) {
	for _, value := range []string{"1", "1.0", "true", "TRUE", " Yes ", "yEs"} {
		if !IsTruthy(value) {
			t.Errorf("IsTruthy(%q) = false, want true", value)
		}
	}
	for _, value := range []string{"", "0", "false", "no", "y", "2", "1.00"} {
		if IsTruthy(value) {
			t.Errorf("IsTruthy(%q) = true, want false", value)
		}
	}
}
