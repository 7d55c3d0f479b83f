package internal

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"plain lowercase", "doha", "doha"},
		{"mixed case", "Doha City", "doha city"},
		{"leading and trailing space", "  Doha   City ", "doha city"},
		{"tabs and newlines", "Doha\t\nCity", "doha city"},
		{"non-breaking space", "Doha City", "doha city"},
		{"only whitespace", " \t  ", ""},
		{"number", 42, "42"},
		{"float", 12.5, "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  Doha   City ", "ALREADY LOWER", "a b", "", "  "}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	if Normalize("  Doha   City ") != Normalize("doha city") {
		t.Errorf("expected %q and %q to normalize equally", "  Doha   City ", "doha city")
	}
}
