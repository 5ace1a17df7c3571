package parser

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Door – 1.2m", "Door - 1.2m"},
		{"Door — 1.2m", "Door - 1.2m"},
		{"−15 mm", "-15 mm"},
		{"non‑breaking‐hyphen", "non-breaking-hyphen"},
		{"‘quoted’", "'quoted'"},
		{"“double”", `"double"`},
		{"etc…", "etc..."},
		{"hard space", "hard space"},
		{"plain ascii - 'fine'", "plain ascii - 'fine'"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.input); got != tt.expected {
			t.Errorf("NormalizeText(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"Door – 1.2m ‘x’ …",
		"already - normal ... text",
		" —“”",
	}
	for _, s := range inputs {
		once := NormalizeText(s)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Door - 1.2m  ", "Door - 1.2m"},
		{"Door \n-   1.2m", "Door - 1.2m"},
		{"one\ttwo\r\nthree", "one two three"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.input); got != tt.expected {
			t.Errorf("NormalizeKey(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
