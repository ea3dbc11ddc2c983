package util

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean name unchanged", "generated_quiz_20260825", "generated_quiz_20260825"},
		{"path separators replaced", `reports/2026\quiz`, "reports_2026_quiz"},
		{"unsafe punctuation replaced", `a<b>c:d"e|f?g*h`, "a_b_c_d_e_f_g_h"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename_Truncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := SanitizeFilename(long)
	if len([]rune(got)) != 100 {
		t.Errorf("SanitizeFilename should cap at 100 runes, got %d", len([]rune(got)))
	}
}
