package utils

import (
	"regexp"
	"strings"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
)

// formIndicators are boilerplate markers printed on official IRS forms.
// Instructional pages bundled with real forms commonly repeat a single
// marker, so a page must hit at least two distinct indicators to count
// as a form worth sending to the model.
var formIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)omb\s+no\.?\s*\d{4}-\d{4}`),
	regexp.MustCompile(`(?i)employer\s+identification\s+number`),
	regexp.MustCompile(`(?i)(payer|recipient)['’]?s?\s+tin`),
	regexp.MustCompile(`(?i)copy\s+[a-d1-2]\b`),
	regexp.MustCompile(`(?i)form\s+(w-2|\d{4})\b`),
}

const minIndicatorMatches = 2

// IsFormPage reports whether a page's plain text looks like an actual
// tax form rather than a cover page or instructions.
func IsFormPage(pageText string) bool {
	matches := 0
	for _, indicator := range formIndicators {
		if indicator.MatchString(pageText) {
			matches++
			if matches >= minIndicatorMatches {
				return true
			}
		}
	}
	return false
}

// ClassifyForm determines which supported form type a qualifying page
// represents by searching for each form's keyword in priority order.
// Classification is purely textual so no model call is spent on pages
// that end up discarded.
func ClassifyForm(pageText string) dto.FormType {
	lower := strings.ToLower(pageText)
	for _, formType := range dto.FormPriority {
		keyword := strings.ToLower(dto.FormCatalog[formType].Keyword)
		if strings.Contains(lower, keyword) {
			return formType
		}
	}
	return dto.FormTypeUnknown
}
