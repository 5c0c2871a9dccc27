package services

import (
	"regexp"
)

// lineClassifier decides whether a normalized line is receipt noise.
// Classification is a union over the skip categories: if any category
// matches, the line is skipped before pattern matching is attempted,
// because headers and footers ("Tax  1.25") frequently satisfy loose
// item-shape patterns.
type lineClassifier struct {
	skipPatterns []*regexp.Regexp
}

func newLineClassifier() *lineClassifier {
	return &lineClassifier{
		skipPatterns: []*regexp.Regexp{
			// Store / brand names commonly seen as receipt headers
			regexp.MustCompile(`(?i)\b(WALMART|TARGET|COSTCO|KROGER|SAFEWAY|ALDI|TRADER\s*JOE'?S|WHOLE\s*FOODS|WALGREENS|CVS|7-?ELEVEN|SUPERMARKET|GROCERY|MARKET|STORE)\b`),
			// Contact and address tokens
			regexp.MustCompile(`(?i)\b(TEL|PHONE|FAX|WWW\.|\.COM|STREET|AVENUE|BLVD|SUITE|ZIP)\b|\(\d{3}\)\s*\d{3}`),
			// Receipt / register metadata
			regexp.MustCompile(`(?i)\b(RECEIPT|STORE\s*#|REG(ISTER)?\s*#?\d*|CASHIER|TRANS(ACTION)?|TERMINAL|OPERATOR|INVOICE)\b`),
			// Totals, tax, discounts and change
			regexp.MustCompile(`(?i)\b(TOTAL|SUB\s*TOTAL|SUBTOTAL|TAX|BALANCE|CHANGE|AMOUNT\s*DUE|DISCOUNT|COUPON|SAVINGS|REFUND|VOID|TENDER)\b`),
			// Payment methods
			regexp.MustCompile(`(?i)\b(CASH|CREDIT|DEBIT|CARD|VISA|MASTERCARD|AMEX|DISCOVER|APPROVED|AUTH|PAYMENT|PAID)\b`),
			// Gratitude / footer phrases
			regexp.MustCompile(`(?i)\b(THANK\s*YOU|THANKS|COME\s*AGAIN|HAVE\s*A|VISIT\s*US|SURVEY|FEEDBACK)\b`),
			// Loyalty / membership phrases
			regexp.MustCompile(`(?i)\b(MEMBER|LOYALTY|REWARDS?|POINTS|CLUB\s*CARD)\b`),
			// Date stamps: 1/2/2024, 01-02-24
			regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
			// Time stamps: 9:41, 12:30 PM
			regexp.MustCompile(`(?i)\d{1,2}:\d{2}(\s*(AM|PM))?`),
			// Separator lines left by OCR
			regexp.MustCompile(`^[-=*_.]+$`),
		},
	}
}

// ShouldSkip reports whether the line is noise rather than an item candidate
func (c *lineClassifier) ShouldSkip(line string) bool {
	for _, pattern := range c.skipPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
