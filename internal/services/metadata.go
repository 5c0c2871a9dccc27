package services

import (
	"regexp"
	"strings"

	"github.com/elkmr-code/receipt-scan/internal/models"
)

// metadataExtractor pulls receipt-level fields out of the line set. Every
// field is opportunistic: whatever matches is kept, whatever doesn't stays
// nil.
type metadataExtractor struct {
	date          *regexp.Regexp
	clock         *regexp.Regexp
	phone         *regexp.Regexp
	receiptNumber *regexp.Regexp
	address       *regexp.Regexp
	headerNoise   *regexp.Regexp
}

func newMetadataExtractor() *metadataExtractor {
	return &metadataExtractor{
		date:          regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`),
		clock:         regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}(?::\d{2})?\s*(?:AM|PM)?)\b`),
		phone:         regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`),
		receiptNumber: regexp.MustCompile(`(?i)\b(?:receipt|trans(?:action)?|invoice|order)\s*#?\s*:?\s*([A-Z0-9][A-Z0-9-]{2,})`),
		address:       regexp.MustCompile(`(?i)\b\d+\s+\w+.*\b(street|st|avenue|ave|road|rd|blvd|boulevard|drive|dr|lane|ln|way)\b`),
		headerNoise:   regexp.MustCompile(`\d{3,}|[$#@]`),
	}
}

// Extract scans all lines for receipt-level metadata
func (m *metadataExtractor) Extract(lines []string) models.ReceiptMetadata {
	var meta models.ReceiptMetadata

	meta.StoreName = m.storeName(lines)

	for _, line := range lines {
		if meta.Date == nil {
			if match := m.date.FindStringSubmatch(line); match != nil {
				meta.Date = &match[1]
			}
		}
		if meta.Time == nil {
			if match := m.clock.FindStringSubmatch(line); match != nil {
				meta.Time = &match[1]
			}
		}
		if meta.PhoneNumber == nil {
			if match := m.phone.FindString(line); match != "" {
				meta.PhoneNumber = &match
			}
		}
		if meta.ReceiptNumber == nil {
			if match := m.receiptNumber.FindStringSubmatch(line); match != nil {
				meta.ReceiptNumber = &match[1]
			}
		}
		if meta.Address == nil {
			if match := m.address.FindString(line); match != "" {
				meta.Address = &match
			}
		}
	}

	return meta
}

// storeName takes the first of the top lines that looks like a header: short,
// mostly letters, free of amounts and codes. Receipts print the vendor first.
func (m *metadataExtractor) storeName(lines []string) *string {
	limit := 3
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		if len(line) < 3 || len(line) > 40 {
			continue
		}
		if m.headerNoise.MatchString(line) {
			continue
		}
		letters := 0
		for _, r := range line {
			if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == ' ' {
				letters++
			}
		}
		if letters*10 >= len(line)*8 {
			name := strings.TrimSpace(line)
			return &name
		}
	}
	return nil
}
