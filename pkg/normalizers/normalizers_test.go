package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Machine Learning", expected: "machine learning"},
		{name: "trims", input: "  chatbot  ", expected: "chatbot"},
		{name: "collapses whitespace", input: "customer \t support", expected: "customer support"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Term(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		minLen   int
		expected []string
	}{
		{
			name:     "splits on punctuation and space",
			input:    "AI-Powered Customer Support",
			minLen:   3,
			expected: []string{"powered", "customer", "support"},
		},
		{
			name:     "minLen filters short tokens",
			input:    "AI-Powered Customer Support",
			minLen:   1,
			expected: []string{"ai", "powered", "customer", "support"},
		},
		{
			name:     "empty input",
			input:    "",
			minLen:   1,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input, tt.minLen))
		})
	}
}

func TestApplyChain(t *testing.T) {
	assert.Equal(t, "gdpr readiness", ApplyChain("  GDPR Readiness ", "trim", "lowercase"))
	assert.Equal(t, "untouched", Apply("untouched", "no_such_normalizer"))
}
