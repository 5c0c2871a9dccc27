package models

import (
	"github.com/shopspring/decimal"
)

// ParsedItem represents a single line item extracted from a receipt
type ParsedItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	Confidence float64         `json:"confidence"`
}

// TotalPrice returns the extended price for the line (unit price times quantity)
func (i ParsedItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ReceiptMetadata holds receipt-level fields extracted opportunistically.
// Any field may be nil; a missing field is normal, not an error.
type ReceiptMetadata struct {
	StoreName     *string `json:"store_name,omitempty"`
	Date          *string `json:"date,omitempty"`
	Time          *string `json:"time,omitempty"`
	Address       *string `json:"address,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	ReceiptNumber *string `json:"receipt_number,omitempty"`
}

// ParseResult is the output of parsing OCR receipt text.
// Items preserve the order of first appearance in the source text.
type ParseResult struct {
	Items         []ParsedItem     `json:"items"`
	DetectedTotal *decimal.Decimal `json:"detected_total,omitempty"`
	Metadata      ReceiptMetadata  `json:"metadata"`

	// TotalMismatch is set when the sum of extracted items diverges from
	// the detected receipt total beyond the configured tolerance. It is a
	// "review suggested" signal; the items themselves are still returned.
	TotalMismatch bool `json:"total_mismatch"`
}

// ItemsTotal sums the extended prices of all extracted items
func (r ParseResult) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range r.Items {
		sum = sum.Add(item.TotalPrice())
	}
	return sum
}
