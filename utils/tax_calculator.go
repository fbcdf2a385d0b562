package utils

import (
	"math"
	"strings"

	"github.com/BrannonKLuong/ai-tax-agent-prototype/dto"
)

// Filing status canonical names
const (
	StatusSingle = "Single"
	StatusMFJ    = "Married Filing Jointly"
	StatusMFS    = "Married Filing Separately"
	StatusHoH    = "Head of Household"
)

// Bracket is one slice of a progressive rate schedule. The top bracket
// of each schedule has Upper = +Inf.
type Bracket struct {
	Lower float64
	Upper float64
	Rate  float64
}

// 2024 IRS standard deductions by filing status.
var StandardDeductions = map[string]float64{
	StatusSingle: 14600,
	StatusMFJ:    29200,
	StatusMFS:    14600,
	StatusHoH:    21900,
}

// 2024 IRS tax brackets by filing status, ordered low to high with no
// gaps or overlaps.
var TaxBrackets2024 = map[string][]Bracket{
	StatusSingle: {
		{0, 11600, 0.10}, {11601, 47150, 0.12}, {47151, 100525, 0.22}, {100526, 191950, 0.24},
		{191951, 243725, 0.32}, {243726, 609350, 0.35}, {609351, math.Inf(1), 0.37},
	},
	StatusMFJ: {
		{0, 23200, 0.10}, {23201, 94300, 0.12}, {94301, 201050, 0.22}, {201051, 383900, 0.24},
		{383901, 487450, 0.32}, {487451, 731200, 0.35}, {731201, math.Inf(1), 0.37},
	},
	StatusMFS: {
		{0, 11600, 0.10}, {11601, 47150, 0.12}, {47151, 100525, 0.22}, {100526, 191950, 0.24},
		{191951, 243725, 0.32}, {243726, 365600, 0.35}, {365601, math.Inf(1), 0.37},
	},
	StatusHoH: {
		{0, 16550, 0.10}, {16551, 63100, 0.12}, {63101, 100500, 0.22}, {100501, 191950, 0.24},
		{191951, 243700, 0.32}, {243701, 609350, 0.35}, {609351, math.Inf(1), 0.37},
	},
}

// statusAliases maps compacted upper-case inputs to canonical names.
var statusAliases = map[string]string{
	"SINGLE":                  StatusSingle,
	"MFJ":                     StatusMFJ,
	"MARRIEDFILINGJOINTLY":    StatusMFJ,
	"MFS":                     StatusMFS,
	"MARRIEDFILINGSEPARATELY": StatusMFS,
	"HOH":                     StatusHoH,
	"HEADOFHOUSEHOLD":         StatusHoH,
}

// NormalizeFilingStatus resolves a user-supplied filing status against
// known aliases. Unrecognized input falls back to Single; the second
// return value is false in that case so the caller can log a warning.
func NormalizeFilingStatus(status string) (string, bool) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(status), " ", ""))
	if canonical, ok := statusAliases[key]; ok {
		return canonical, true
	}
	return StatusSingle, false
}

// CalculateTax computes 2024 federal liability for a normalized filing
// status. Pure function: deduction lookup, progressive bracket walk,
// withholding offset. A negative TaxDueOrRefund means a refund.
func CalculateTax(grossIncome, federalWithheld float64, filingStatus string) dto.TaxSummary {
	standardDeduction := StandardDeductions[filingStatus]
	taxableIncome := math.Max(0, grossIncome-standardDeduction)

	calculatedTax := 0.0
	remaining := taxableIncome
	for _, bracket := range TaxBrackets2024[filingStatus] {
		if remaining <= 0 {
			break
		}
		taxableInBracket := math.Min(remaining, bracket.Upper-bracket.Lower)
		calculatedTax += taxableInBracket * bracket.Rate
		remaining -= taxableInBracket
	}

	return dto.TaxSummary{
		GrossIncome:              grossIncome,
		StandardDeductionApplied: standardDeduction,
		TaxableIncome:            taxableIncome,
		CalculatedTax:            calculatedTax,
		TotalFederalWithheld:     federalWithheld,
		TaxDueOrRefund:           calculatedTax - federalWithheld,
	}
}
