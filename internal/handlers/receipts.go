package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseReceiptRequest is the body for POST /api/receipts/parse
type ParseReceiptRequest struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// ParseReceipt runs the parsing core over recognized OCR text. A parse
// never fails outright: malformed lines simply produce no items, and a
// total/items discrepancy is reported via the total_mismatch flag.
func (h *Handler) ParseReceipt(c *fiber.Ctx) error {
	var req ParseReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Text) == "" {
		return Error(c, fiber.StatusBadRequest, "text is required")
	}

	if req.Confidence != nil {
		if *req.Confidence < 0 || *req.Confidence > 1 {
			return Error(c, fiber.StatusBadRequest, "confidence must be between 0 and 1")
		}
		return Success(c, h.parser.ParseWithConfidence(req.Text, *req.Confidence))
	}

	return Success(c, h.parser.Parse(req.Text))
}
