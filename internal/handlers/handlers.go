package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elkmr-code/receipt-scan/internal/config"
	"github.com/elkmr-code/receipt-scan/internal/services"
)

// Handler holds all handler dependencies
type Handler struct {
	cfg    *config.Config
	parser *services.ReceiptParser
}

// New creates a new Handler instance
func New(cfg *config.Config) *Handler {
	parserCfg := services.ParserConfig{
		MinItemPrice:        cfg.MinItemPrice,
		MaxItemPrice:        cfg.MaxItemPrice,
		MinNameLength:       cfg.MinNameLength,
		MaxNameLength:       cfg.MaxNameLength,
		SimilarityThreshold: cfg.SimilarityThreshold,
		PriceProximity:      cfg.PriceProximity,
		TotalToleranceAbs:   cfg.TotalToleranceAbs,
		TotalTolerancePct:   cfg.TotalTolerancePct,
		DefaultConfidence:   cfg.DefaultConfidence,
	}

	return &Handler{
		cfg:    cfg,
		parser: services.NewReceiptParser(parserCfg),
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Default to 500
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// APIResponse is a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success returns a successful response
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// Error returns an error response
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Error:   message,
	})
}
