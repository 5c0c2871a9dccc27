package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalExtractor(t *testing.T) {
	e := newTotalExtractor()

	tests := []struct {
		line string
		want string
	}{
		{"Total: $7.98", "7.98"},
		{"TOTAL 10.70", "10.70"},
		{"Grand Total  15.00", "15.00"},
		{"total: 1,234.56", "1234.56"},
		{"Amount Due: 12.34", "12.34"},
		{"AMOUNT DUE $3.00", "3.00"},
		{"Balance 9.99", "9.99"},
		{"Balance Due: $9.99", "9.99"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			total, ok := e.Extract(tt.line)
			require.True(t, ok, "expected a total in %q", tt.line)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.want)), "got %s", total)
		})
	}
}

func TestTotalExtractorIgnores(t *testing.T) {
	e := newTotalExtractor()

	lines := []string{
		"Subtotal: 5.00",
		"SUB TOTAL 5.00",
		"subtotal  12.99",
		"Total items sold 5", // keyword present but no amount follows
		"Milk  3.50",
		"Thank you",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, ok := e.Extract(line)
			assert.False(t, ok, "expected no total in %q", line)
		})
	}
}
