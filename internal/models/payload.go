package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayloadSource indicates how a scan payload was decoded
type PayloadSource string

const (
	// PayloadSourceStructured means the payload was a well-formed JSON document
	PayloadSourceStructured PayloadSource = "structured"
	// PayloadSourceLoose means only an identifier was recovered from a
	// loose key-value scan; any items or total in the payload were dropped
	PayloadSourceLoose PayloadSource = "loose"
	// PayloadSourceBareID means the payload was a bare transaction identifier
	PayloadSourceBareID PayloadSource = "bare_id"
)

// PayloadItem is a line item carried inside a structured scan payload
type PayloadItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Category *string         `json:"category,omitempty"`
}

// StructuredPayload is the decoded form of a barcode/QR payload. Items may
// be empty: a bare transaction ID is a valid scan that carries no line data,
// and callers are expected to fall back to manual item entry.
type StructuredPayload struct {
	ID        string           `json:"id"`
	Items     []PayloadItem    `json:"items,omitempty"`
	Total     *decimal.Decimal `json:"total,omitempty"`
	Timestamp *string          `json:"timestamp,omitempty"`
	Location  *string          `json:"location,omitempty"`
	Source    PayloadSource    `json:"source"`
}

// ToParsedItems converts payload items to ParsedItems. Structured payloads
// carry exact data, so confidence is always 1.0.
func (p StructuredPayload) ToParsedItems() []ParsedItem {
	items := make([]ParsedItem, 0, len(p.Items))
	for _, pi := range p.Items {
		qty := pi.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, ParsedItem{
			ID:         uuid.New().String(),
			Name:       pi.Name,
			UnitPrice:  pi.Price,
			Quantity:   qty,
			Confidence: 1.0,
		})
	}
	return items
}
