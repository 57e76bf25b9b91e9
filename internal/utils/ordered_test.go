package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedUnique(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "empty", input: nil, expected: []string{}},
		{name: "single value", input: []string{"USD"}, expected: []string{"USD"}},
		{
			name:     "dedupes preserving first-seen order",
			input:    []string{"EUR", "USD", "EUR", "GBP", "USD"},
			expected: []string{"EUR", "USD", "GBP"},
		},
		{
			name:     "skips blanks",
			input:    []string{"", "USD", "", "EUR"},
			expected: []string{"USD", "EUR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrderedUnique(tt.input))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}
