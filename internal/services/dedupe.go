package services

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/elkmr-code/receipt-scan/internal/models"
)

// dedupe collapses near-duplicate candidates, keeping the first occurrence.
// Two items are duplicates only when BOTH conditions hold: name similarity
// above the threshold and prices within the proximity window. Either signal
// alone is legitimate on real receipts, like identical prices on different
// items, or near-identical product variants at different prices.
func (p *ReceiptParser) dedupe(items []models.ParsedItem) []models.ParsedItem {
	survivors := make([]models.ParsedItem, 0, len(items))

	for _, item := range items {
		duplicate := false
		for _, kept := range survivors {
			if p.isDuplicate(kept, item) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			survivors = append(survivors, item)
		}
	}

	return survivors
}

func (p *ReceiptParser) isDuplicate(a, b models.ParsedItem) bool {
	similarity := levenshtein.Similarity(strings.ToLower(a.Name), strings.ToLower(b.Name), nil)
	if similarity <= p.cfg.SimilarityThreshold {
		return false
	}

	priceDiff := a.UnitPrice.Sub(b.UnitPrice).Abs()
	return priceDiff.LessThan(p.cfg.PriceProximity)
}
