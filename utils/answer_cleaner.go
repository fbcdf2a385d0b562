package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches number-like substrings: digits with optional
// internal thousands commas and an optional decimal tail.
var numberPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

// CleanAmount turns a free-text model answer into a dollar amount.
// Model answers often carry currency symbols, labels, or more than one
// number (a box number next to the real amount); the largest parseable
// number wins. Known heuristic risk: an embedded account number larger
// than the amount would win too, but on the supported forms amounts
// dominate in practice.
//
// Never fails: answers with no digits, or where nothing parses, yield 0.
func CleanAmount(text string) float64 {
	if !strings.ContainsAny(text, "0123456789") {
		return 0.0
	}

	best := 0.0
	for _, match := range numberPattern.FindAllString(text, -1) {
		cleaned := strings.ReplaceAll(match, ",", "")
		amount, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		if amount > best {
			best = amount
		}
	}

	return best
}
