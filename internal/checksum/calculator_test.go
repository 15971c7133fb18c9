package checksum

import (
	"testing"
)

func TestSHA256Calculator_KnownVectors(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty string",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.CalculateNormalized([]byte(tt.content))
			if result != tt.expected {
				t.Errorf("CalculateNormalized() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestSHA256Calculator_CalculateNormalized(t *testing.T) {
	calc := New()

	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"CRLF vs LF", "fileFormatVersion: 2\r\nguid: a\r\n", "fileFormatVersion: 2\nguid: a\n", true},
		{"lone CR vs LF", "a\rb\r", "a\nb\n", true},
		{"mixed terminators", "a\r\nb\nc\r", "a\nb\nc\n", true},
		{"different identifier", "guid: a\n", "guid: b\n", false},
		{"missing trailing newline", "guid: a", "guid: a\n", false},
		{"trailing whitespace matters", "guid: a \n", "guid: a\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.CalculateNormalized([]byte(tt.a)) == calc.CalculateNormalized([]byte(tt.b))
			if got != tt.equal {
				t.Errorf("normalized(%q) == normalized(%q) is %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestNormalizeLineEndings_DoesNotMutateInput(t *testing.T) {
	in := []byte("a\r\nb")
	_ = NormalizeLineEndings(in)
	if string(in) != "a\r\nb" {
		t.Errorf("input mutated: %q", in)
	}
	if got := string(NormalizeLineEndings(in)); got != "a\nb" {
		t.Errorf("NormalizeLineEndings() = %q, want %q", got, "a\nb")
	}
}
