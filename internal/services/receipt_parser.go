package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elkmr-code/receipt-scan/internal/models"
)

// ParserConfig holds the tunable thresholds of the receipt parser. The
// heuristics behind them (duplicate similarity, total tolerance) are the
// parts most likely to need adjustment, so none of them are hardcoded.
type ParserConfig struct {
	// Item candidates with a unit price outside (MinItemPrice, MaxItemPrice)
	// are rejected as OCR noise (phone numbers, UPCs, register codes).
	MinItemPrice decimal.Decimal
	MaxItemPrice decimal.Decimal

	// Cleaned item names outside [MinNameLength, MaxNameLength] are rejected.
	MinNameLength int
	MaxNameLength int

	// Two items are duplicates when their name similarity exceeds
	// SimilarityThreshold AND their prices differ by less than PriceProximity.
	SimilarityThreshold float64
	PriceProximity      decimal.Decimal

	// The total-mismatch flag is raised when the item sum diverges from the
	// detected total by more than BOTH tolerances.
	TotalToleranceAbs decimal.Decimal
	TotalTolerancePct float64

	// Confidence assigned to items extracted from OCR text when the caller
	// does not supply one.
	DefaultConfidence float64
}

// DefaultParserConfig returns the standard thresholds
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		MinItemPrice:        decimal.NewFromFloat(0.01),
		MaxItemPrice:        decimal.NewFromInt(1000),
		MinNameLength:       2,
		MaxNameLength:       50,
		SimilarityThreshold: 0.8,
		PriceProximity:      decimal.NewFromFloat(0.50),
		TotalToleranceAbs:   decimal.NewFromFloat(0.50),
		TotalTolerancePct:   0.10,
		DefaultConfidence:   0.8,
	}
}

// ReceiptParser extracts line items and receipt metadata from OCR text.
// It holds only compiled patterns and configuration, so a single instance
// is safe for concurrent use.
type ReceiptParser struct {
	cfg        ParserConfig
	classifier *lineClassifier
	matchers   []lineMatcher
	totals     *totalExtractor
	metadata   *metadataExtractor
}

// NewReceiptParser creates a receipt parser with the given thresholds
func NewReceiptParser(cfg ParserConfig) *ReceiptParser {
	return &ReceiptParser{
		cfg:        cfg,
		classifier: newLineClassifier(),
		matchers:   newLineMatchers(),
		totals:     newTotalExtractor(),
		metadata:   newMetadataExtractor(),
	}
}

// Parse parses OCR text using the configured default confidence
func (p *ReceiptParser) Parse(ocrText string) models.ParseResult {
	return p.ParseWithConfidence(ocrText, p.cfg.DefaultConfidence)
}

// ParseReceiptText parses OCR text with the default thresholds. Callers
// that parse repeatedly or tune thresholds should hold a ReceiptParser
// instead, so the patterns compile once.
func ParseReceiptText(ocrText string, confidence float64) models.ParseResult {
	return NewReceiptParser(DefaultParserConfig()).ParseWithConfidence(ocrText, confidence)
}

// ParseWithConfidence parses OCR text and assigns the given confidence to
// every extracted item. Unparseable lines are dropped, never surfaced as
// errors: OCR text is lossy and the parse must degrade to fewer items.
func (p *ReceiptParser) ParseWithConfidence(ocrText string, confidence float64) models.ParseResult {
	lines := normalizeLines(ocrText)

	result := models.ParseResult{
		Items:    []models.ParsedItem{},
		Metadata: p.metadata.Extract(lines),
	}

	var candidates []models.ParsedItem
	for _, line := range lines {
		// Totals are checked on every line before anything else: a total
		// line would otherwise satisfy the item-shape patterns too. The
		// last total-like line wins, since receipts print subtotal, tax,
		// then total in that order.
		if total, ok := p.totals.Extract(line); ok {
			result.DetectedTotal = &total
			continue
		}

		if p.classifier.ShouldSkip(line) {
			continue
		}

		raw, ok := matchLine(p.matchers, line)
		if !ok {
			continue
		}

		item, ok := p.sanitizeItem(raw, confidence)
		if !ok {
			continue
		}
		candidates = append(candidates, item)
	}

	result.Items = p.dedupe(candidates)
	result.TotalMismatch = p.totalMismatch(result)

	return result
}

// totalMismatch reports whether the extracted items diverge from the
// detected total beyond both the absolute and relative tolerances. An
// empty item list still counts: a receipt with a printed total and no
// recovered items is the clearest review-suggested case there is.
func (p *ReceiptParser) totalMismatch(result models.ParseResult) bool {
	if result.DetectedTotal == nil {
		return false
	}

	diff := result.ItemsTotal().Sub(*result.DetectedTotal).Abs()
	relTolerance := result.DetectedTotal.Mul(decimal.NewFromFloat(p.cfg.TotalTolerancePct))

	return diff.GreaterThan(p.cfg.TotalToleranceAbs) && diff.GreaterThan(relTolerance)
}

// normalizeLines splits raw OCR text into trimmed, non-empty lines,
// preserving source order
func normalizeLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func newItemID() string {
	return uuid.New().String()
}
