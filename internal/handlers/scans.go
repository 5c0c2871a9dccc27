package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/elkmr-code/receipt-scan/internal/services"
)

// DecodeScanRequest is the body for POST /api/scans/decode
type DecodeScanRequest struct {
	Payload string `json:"payload"`
}

// DecodeScan decodes a barcode/QR payload. Unlike text parsing this can
// fail hard: a payload carrying no usable transaction data comes back as
// 422 so the client knows to fall back to manual entry.
func (h *Handler) DecodeScan(c *fiber.Ctx) error {
	var req DecodeScanRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Payload == "" {
		return Error(c, fiber.StatusBadRequest, "payload is required")
	}

	decoded, err := services.DecodeScanPayload(req.Payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPayload) {
			return Error(c, fiber.StatusUnprocessableEntity, "payload carries no usable transaction data")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to decode payload")
	}

	return Success(c, decoded)
}
