package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Bohemian Rhapsody", "Bohemian Rhapsody"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "line\nbreak", "linebreak"},
		{"escape dropped", "red\x1b[31m", "red[31m"},
		{"invalid utf8 dropped", "ab\xffcd", "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"wide chars", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	for _, width := range []int{1, 4, 8, 20} {
		for _, s := range []string{"", "abc", "a much longer title", "日本語"} {
			if got := lipgloss.Width(Fit(s, width)); got != width {
				t.Errorf("Fit(%q, %d) width = %d", s, width, got)
			}
			if got := lipgloss.Width(FitRight(s, width)); got != width {
				t.Errorf("FitRight(%q, %d) width = %d", s, width, got)
			}
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row overflow = %q, want single space gap", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{121 * time.Second, "2:01"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := Duration(tt.in); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
