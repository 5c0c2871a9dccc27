package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *ReceiptParser {
	return NewReceiptParser(DefaultParserConfig())
}

func TestParseQuantityPrefixedWithTotal(t *testing.T) {
	result := newTestParser().Parse("2x Apple Juice $3.99\nTotal: $7.98")

	require.Len(t, result.Items, 1)
	item := result.Items[0]
	assert.Equal(t, "Apple Juice", item.Name)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromFloat(3.99)), "unit price = %s", item.UnitPrice)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 0.8, item.Confidence)
	assert.NotEmpty(t, item.ID)

	require.NotNil(t, result.DetectedTotal)
	assert.True(t, result.DetectedTotal.Equal(decimal.NewFromFloat(7.98)))

	// 2 * 3.99 matches the detected total exactly
	assert.False(t, result.TotalMismatch)
}

func TestParseTotalMismatchFlag(t *testing.T) {
	result := newTestParser().Parse("Milk 3.50\nBread 2.00\nTotal 10.70")

	require.Len(t, result.Items, 2)
	assert.Equal(t, "Milk", result.Items[0].Name)
	assert.Equal(t, "Bread", result.Items[1].Name)

	require.NotNil(t, result.DetectedTotal)
	assert.True(t, result.DetectedTotal.Equal(decimal.NewFromFloat(10.70)))

	// Items sum to 5.50 against a detected total of 10.70; the difference
	// of 5.20 exceeds both $0.50 and 10% of the total.
	assert.True(t, result.TotalMismatch)
}

func TestParseMismatchWithinTolerance(t *testing.T) {
	// Sum 7.48 vs total 7.98: difference 0.50 is not strictly greater
	// than the absolute tolerance, so no flag.
	result := newTestParser().Parse("Apple Juice  7.48\nTotal: $7.98")

	require.Len(t, result.Items, 1)
	require.NotNil(t, result.DetectedTotal)
	assert.False(t, result.TotalMismatch)
}

func TestParseMismatchWhenNoItemsRecovered(t *testing.T) {
	// OCR recovered nothing readable, but the receipt clearly has a
	// total. The full 10.70 discrepancy exceeds both tolerances, so the
	// review flag must still be raised.
	result := newTestParser().Parse("????? ?????\nTotal 10.70")

	assert.Empty(t, result.Items)
	require.NotNil(t, result.DetectedTotal)
	assert.True(t, result.DetectedTotal.Equal(decimal.NewFromFloat(10.70)))
	assert.True(t, result.TotalMismatch)
}

func TestParseSkipLinesNeverYieldItems(t *testing.T) {
	// Every line here matches an item-shape pattern but must be excluded
	// by classification first.
	lines := []string{
		"Subtotal  5.00",
		"Tax  1.25",
		"VISA  12.50",
		"Thank you for shopping  9.99",
		"Member savings  2.00",
		"01/02/2024  4.00",
		"Cashier 03  1.00",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			result := newTestParser().Parse(line)
			assert.Empty(t, result.Items)
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n\t\n  "} {
		result := newTestParser().Parse(input)
		assert.Empty(t, result.Items)
		assert.Nil(t, result.DetectedTotal)
		assert.False(t, result.TotalMismatch)
	}
}

func TestParsePreservesSourceOrder(t *testing.T) {
	result := newTestParser().Parse("Apples  1.00\nBananas  2.00\nCherries  3.00\nTotal  6.00")

	require.Len(t, result.Items, 3)
	assert.Equal(t, "Apples", result.Items[0].Name)
	assert.Equal(t, "Bananas", result.Items[1].Name)
	assert.Equal(t, "Cherries", result.Items[2].Name)
	assert.False(t, result.TotalMismatch)
}

func TestParseLastTotalWins(t *testing.T) {
	result := newTestParser().Parse("Balance  5.00\nApples  5.50\nTotal  5.50")

	require.NotNil(t, result.DetectedTotal)
	assert.True(t, result.DetectedTotal.Equal(decimal.NewFromFloat(5.50)))
}

func TestParseWithConfidence(t *testing.T) {
	result := newTestParser().ParseWithConfidence("Milk  3.50", 0.5)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 0.5, result.Items[0].Confidence)
}

func TestParseReceiptTextConvenience(t *testing.T) {
	result := ParseReceiptText("Milk  3.50", 0.9)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 0.9, result.Items[0].Confidence)
}

func TestParseUnmatchedLinesAreDropped(t *testing.T) {
	result := newTestParser().Parse("some stray ocr garbage\nMilk  3.50\n@@@@")

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Milk", result.Items[0].Name)
}

func TestParseMetadata(t *testing.T) {
	text := "FRESH MART\n456 Oak Avenue\nTel: (555) 123-4567\n01/02/2024 12:30 PM\nReceipt # A12345\nMilk  3.50\nTotal  3.50"
	result := newTestParser().Parse(text)

	meta := result.Metadata
	require.NotNil(t, meta.StoreName)
	assert.Equal(t, "FRESH MART", *meta.StoreName)
	require.NotNil(t, meta.Date)
	assert.Equal(t, "01/02/2024", *meta.Date)
	require.NotNil(t, meta.Time)
	assert.Equal(t, "12:30 PM", *meta.Time)
	require.NotNil(t, meta.PhoneNumber)
	assert.Equal(t, "(555) 123-4567", *meta.PhoneNumber)
	require.NotNil(t, meta.ReceiptNumber)
	assert.Equal(t, "A12345", *meta.ReceiptNumber)
	require.NotNil(t, meta.Address)

	// Metadata lines themselves must not leak into the item list
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Milk", result.Items[0].Name)
}

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n\t\n", nil},
		{"trims and drops", "  Milk  \n\n  Bread\n", []string{"Milk", "Bread"}},
		{"preserves order", "c\nb\na", []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeLines(tt.input))
		})
	}
}
