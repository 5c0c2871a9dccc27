package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/elkmr-code/receipt-scan/internal/models"
)

// blacklistTerms rejects candidates whose name is really a financial or
// administrative line that slipped past the classifier
var blacklistTerms = []string{"total", "tax", "subtotal", "change", "cash", "credit", "debit"}

var innerSpace = regexp.MustCompile(`\s+`)

// sanitizeItem cleans and validates a raw tuple from the cascade. Rejected
// tuples are dropped silently: a missed item is recoverable by manual entry
// downstream, a spurious one corrupts every computation built on it.
func (p *ReceiptParser) sanitizeItem(raw rawItem, confidence float64) (models.ParsedItem, bool) {
	name := cleanItemName(raw.name)
	if len(name) < p.cfg.MinNameLength || len(name) > p.cfg.MaxNameLength {
		return models.ParsedItem{}, false
	}

	lower := strings.ToLower(name)
	for _, term := range blacklistTerms {
		if strings.Contains(lower, term) {
			return models.ParsedItem{}, false
		}
	}

	price, err := decimal.NewFromString(cleanPriceString(raw.price))
	if err != nil {
		return models.ParsedItem{}, false
	}
	if !price.GreaterThan(p.cfg.MinItemPrice) || !price.LessThan(p.cfg.MaxItemPrice) {
		return models.ParsedItem{}, false
	}

	quantity := raw.quantity
	if quantity < 1 {
		quantity = 1
	}

	return models.ParsedItem{
		ID:         newItemID(),
		Name:       name,
		UnitPrice:  price,
		Quantity:   quantity,
		Confidence: confidence,
	}, true
}

// cleanItemName collapses internal whitespace, trims stray punctuation and
// title-cases the result
func cleanItemName(name string) string {
	name = innerSpace.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = strings.Trim(name, ".,;:-_*#@")
	name = strings.TrimSpace(name)

	// cases.Caser is stateful, so build one per call rather than sharing
	return cases.Title(language.English).String(strings.ToLower(name))
}

// cleanPriceString strips currency symbols and grouping separators so the
// remainder parses as a plain decimal
func cleanPriceString(price string) string {
	price = strings.TrimSpace(price)
	price = strings.Trim(price, "$€£")
	price = strings.ReplaceAll(price, ",", "")
	return price
}
