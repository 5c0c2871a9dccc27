package services

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// totalExtractor finds the grand total on a receipt. It runs against every
// line, including ones the classifier would skip, because total lines must
// be claimed before the item-shape patterns get a chance at them.
type totalExtractor struct {
	patterns []*regexp.Regexp
	subtotal *regexp.Regexp
}

func newTotalExtractor() *totalExtractor {
	return &totalExtractor{
		patterns: []*regexp.Regexp{
			// \btotal\b does not match inside "subtotal", but "SUB TOTAL"
			// needs the explicit guard below
			regexp.MustCompile(`(?i)\b(?:grand\s*)?total\b\s*:?\s*\$?(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2}|\d+)`),
			regexp.MustCompile(`(?i)\bamount\s*due\b\s*:?\s*\$?(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2}|\d+)`),
			regexp.MustCompile(`(?i)\bbalance(?:\s*due)?\b\s*:?\s*\$?(\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2}|\d+)`),
		},
		subtotal: regexp.MustCompile(`(?i)\bsub\s*total\b`),
	}
}

// Extract returns the total amount on the line, if it carries one.
// Subtotal lines never count as the grand total.
func (t *totalExtractor) Extract(line string) (decimal.Decimal, bool) {
	if t.subtotal.MatchString(line) {
		return decimal.Zero, false
	}

	for _, pattern := range t.patterns {
		matches := pattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		total, err := decimal.NewFromString(cleanPriceString(matches[1]))
		if err != nil || !total.IsPositive() {
			continue
		}
		return total, true
	}
	return decimal.Zero, false
}
