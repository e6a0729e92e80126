package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"french thousands and decimal", "1 234,56", 1234.56},
		{"french thousands only", "292 000", 292000},
		{"non-breaking spaces", "1 234,56", 1234.56},
		{"dot thousands with comma decimal", "1.234,56", 1234.56},
		{"plain dot decimal", "12.5", 12.5},
		{"plain integer", "42", 42},
		{"surrounding whitespace", "  42  ", 42},
		{"comma decimal only", "0,75", 0.75},
		{"negative amount", "-1 500,25", -1500.25},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"not a number", "abc", 0},
		{"multiple commas", "1,2,3", 0},
		{"trailing garbage", "12x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(tt.input))
		})
	}
}

func TestAmountNonFinite(t *testing.T) {
	// Values that would overflow to +Inf normalize to 0.
	assert.Equal(t, 0.0, Amount("1e999"))
}
