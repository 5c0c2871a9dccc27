package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"

	"github.com/elkmr-code/receipt-scan/internal/models"
)

// ErrInvalidPayload is returned when a scan payload is neither structured
// JSON, a loose key-value dump, nor a bare transaction identifier. It is
// the only hard failure in the package: the caller genuinely needs to know
// the code carries no usable transaction data so it can fall back to
// manual entry.
var ErrInvalidPayload = errors.New("payload carries no usable transaction data")

// payloadSchema constrains strict payloads the same way it would arrive
// from a well-behaved point-of-sale encoder. Prices may be JSON numbers or
// decimal strings.
var payloadSchema = jsonschema.MustCompileString("scan_payload.json", `{
	"type": "object",
	"anyOf": [
		{"required": ["id"]},
		{"required": ["receiptId"]}
	],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"receiptId": {"type": "string", "minLength": 1},
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "price"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"price": {"type": ["number", "string"]},
					"qty": {"type": "integer", "minimum": 1},
					"quantity": {"type": "integer", "minimum": 1},
					"category": {"type": "string"}
				}
			}
		},
		"total": {"type": ["number", "string"]},
		"timestamp": {"type": "string"},
		"location": {"type": "string"}
	}
}`)

// transactionIDShape accepts bare transaction identifiers such as TXN99ABC
var transactionIDShape = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// looseIDPattern recovers an identifier from key-value payloads that fail
// strict decoding, e.g. "id: TXN123, items: [...]". The key may be quoted:
// JSON-shaped payloads that flunk schema validation land here too, and a
// recoverable identifier must not turn into a hard decode failure.
var looseIDPattern = regexp.MustCompile(`(?i)"?\b(?:receipt_?)?id"?\s*[:=]\s*"?([A-Za-z0-9_-]{3,})"?`)

type payloadWire struct {
	ID        string            `json:"id"`
	ReceiptID string            `json:"receiptId"`
	Items     []payloadItemWire `json:"items"`
	Total     *decimal.Decimal  `json:"total"`
	Timestamp *string           `json:"timestamp"`
	Location  *string           `json:"location"`
}

type payloadItemWire struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Qty      int             `json:"qty"`
	Quantity int             `json:"quantity"`
	Category *string         `json:"category"`
}

// DecodeScanPayload parses a barcode/QR payload string. It tries, in
// order: strict structured JSON, a loose key-value scan that recovers at
// least an identifier, and a bare transaction-ID shape. When all three
// fail the payload is rejected with ErrInvalidPayload.
func DecodeScanPayload(payload string) (models.StructuredPayload, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return models.StructuredPayload{}, fmt.Errorf("decode scan payload: %w", ErrInvalidPayload)
	}

	if decoded, ok := decodeStructured(payload); ok {
		return decoded, nil
	}

	// Loose recovery only salvages the identifier. Items or totals present
	// in a malformed payload are dropped, and the Source field marks the
	// result as a partial decode so callers can tell.
	if match := looseIDPattern.FindStringSubmatch(payload); match != nil {
		return models.StructuredPayload{
			ID:     match[1],
			Source: models.PayloadSourceLoose,
		}, nil
	}

	if transactionIDShape.MatchString(payload) {
		return models.StructuredPayload{
			ID:     payload,
			Source: models.PayloadSourceBareID,
		}, nil
	}

	return models.StructuredPayload{}, fmt.Errorf("decode scan payload: %w", ErrInvalidPayload)
}

func decodeStructured(payload string) (models.StructuredPayload, bool) {
	raw := []byte(payload)

	// Validate against the schema first so a structurally wrong document
	// falls through to loose recovery instead of half-decoding.
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return models.StructuredPayload{}, false
	}
	if err := payloadSchema.Validate(doc); err != nil {
		return models.StructuredPayload{}, false
	}

	var wire payloadWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return models.StructuredPayload{}, false
	}

	id := wire.ID
	if id == "" {
		id = wire.ReceiptID
	}

	decoded := models.StructuredPayload{
		ID:        id,
		Total:     wire.Total,
		Timestamp: wire.Timestamp,
		Location:  wire.Location,
		Source:    models.PayloadSourceStructured,
	}
	for _, item := range wire.Items {
		// Encoders disagree on the quantity key; accept both spellings
		qty := item.Qty
		if qty < 1 {
			qty = item.Quantity
		}
		if qty < 1 {
			qty = 1
		}
		decoded.Items = append(decoded.Items, models.PayloadItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
			Category: item.Category,
		})
	}

	return decoded, true
}
