package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsedItemTotalPrice(t *testing.T) {
	item := ParsedItem{
		Name:      "Apple Juice",
		UnitPrice: decimal.RequireFromString("3.99"),
		Quantity:  2,
	}

	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("7.98")))
}

func TestParseResultItemsTotal(t *testing.T) {
	result := ParseResult{
		Items: []ParsedItem{
			{UnitPrice: decimal.RequireFromString("3.50"), Quantity: 1},
			{UnitPrice: decimal.RequireFromString("2.00"), Quantity: 3},
		},
	}

	assert.True(t, result.ItemsTotal().Equal(decimal.RequireFromString("9.50")))
}

func TestParseResultItemsTotalEmpty(t *testing.T) {
	assert.True(t, ParseResult{}.ItemsTotal().IsZero())
}
