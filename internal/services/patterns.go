package services

import (
	"regexp"
	"strconv"
	"strings"
)

// priceToken matches a currency amount: optional $, optional thousands
// separators, and exactly two decimal digits when a point is present.
const priceToken = `\$?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?`

// rawItem is an unvalidated (name, price, quantity) tuple extracted by a
// line matcher, before sanitization
type rawItem struct {
	name     string
	price    string
	quantity int
}

// lineMatcher is one shape pattern in the cascade. Matchers are tried in
// order and the first success wins; the cascade runs from most specific to
// most permissive so that a line satisfying several shapes is interpreted
// by the least ambiguous one.
type lineMatcher struct {
	name    string
	pattern *regexp.Regexp
	extract func(matches []string) (rawItem, bool)
}

func newLineMatchers() []lineMatcher {
	return []lineMatcher{
		{
			// 2x Apple Juice $3.99
			name:    "quantity-prefixed",
			pattern: regexp.MustCompile(`(?i)^(\d+)\s*[x×]\s*(.+?)\s+(` + priceToken + `)$`),
			extract: func(m []string) (rawItem, bool) {
				qty, err := strconv.Atoi(m[1])
				if err != nil {
					return rawItem{}, false
				}
				return rawItem{name: m[2], price: m[3], quantity: qty}, true
			},
		},
		{
			// Milk  3.50 (two or more aligning spaces)
			name:    "two-space-aligned",
			pattern: regexp.MustCompile(`^(.+?)\s{2,}(` + priceToken + `)$`),
			extract: extractNamePrice,
		},
		{
			// Milk<TAB>3.50
			name:    "tab-separated",
			pattern: regexp.MustCompile(`^(.+?)\t+(` + priceToken + `)$`),
			extract: extractNamePrice,
		},
		{
			// Milk - 3.50
			name:    "dash-separated",
			pattern: regexp.MustCompile(`^(.+?)\s+-\s+(` + priceToken + `)$`),
			extract: extractNamePrice,
		},
		{
			// Right-aligned fallback: any gap, name at least 3 chars
			name:    "right-aligned",
			pattern: regexp.MustCompile(`^(.{3,}?)\s+(` + priceToken + `)$`),
			extract: extractNamePrice,
		},
	}
}

func extractNamePrice(m []string) (rawItem, bool) {
	return rawItem{name: m[1], price: m[2], quantity: 1}, true
}

// matchLine runs the cascade against a candidate line and returns the first
// successful match. A line matching no pattern yields no candidate; that is
// a normal outcome for noisy OCR text, not an error.
func matchLine(matchers []lineMatcher, line string) (rawItem, bool) {
	line = cleanOCRArtifacts(line)

	for _, m := range matchers {
		matches := m.pattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		if raw, ok := m.extract(matches); ok {
			return raw, true
		}
	}
	return rawItem{}, false
}

var spaceRun = regexp.MustCompile(`[^\S\t]{2,}`)

// cleanOCRArtifacts strips characters that OCR commonly mistakes for line
// structure. Runs of spaces are kept at two so the alignment patterns still
// see their column gap; tabs are left alone.
func cleanOCRArtifacts(line string) string {
	line = strings.ReplaceAll(line, "|", "")
	line = strings.ReplaceAll(line, "\\", "")
	line = spaceRun.ReplaceAllString(line, "  ")
	return strings.TrimSpace(line)
}
