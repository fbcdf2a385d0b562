package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilingStatus(t *testing.T) {
	status, ok := NormalizeFilingStatus("MFJ")
	assert.True(t, ok)
	assert.Equal(t, StatusMFJ, status)

	status, ok = NormalizeFilingStatus("married filing jointly")
	assert.True(t, ok)
	assert.Equal(t, StatusMFJ, status)

	status, ok = NormalizeFilingStatus("hoh")
	assert.True(t, ok)
	assert.Equal(t, StatusHoH, status)

	status, ok = NormalizeFilingStatus("Single")
	assert.True(t, ok)
	assert.Equal(t, StatusSingle, status)
}

func TestNormalizeFilingStatusUnknownDefaultsToSingle(t *testing.T) {
	status, ok := NormalizeFilingStatus("Foo")
	assert.False(t, ok)
	assert.Equal(t, StatusSingle, status)
}

func TestCalculateTaxSingle(t *testing.T) {
	summary := CalculateTax(50000, 5000, StatusSingle)

	assert.Equal(t, 50000.0, summary.GrossIncome)
	assert.Equal(t, 14600.0, summary.StandardDeductionApplied)
	assert.Equal(t, 35400.0, summary.TaxableIncome)
	// 11600*0.10 + (35400-11600)*0.12 = 1160 + 2856
	assert.InDelta(t, 4016.0, summary.CalculatedTax, 0.01)
	assert.Equal(t, 5000.0, summary.TotalFederalWithheld)
	assert.InDelta(t, -984.0, summary.TaxDueOrRefund, 0.01)
}

func TestCalculateTaxIncomeBelowDeduction(t *testing.T) {
	summary := CalculateTax(10000, 1200, StatusSingle)

	assert.Equal(t, 0.0, summary.TaxableIncome)
	assert.Equal(t, 0.0, summary.CalculatedTax)
	assert.InDelta(t, -1200.0, summary.TaxDueOrRefund, 0.01)
}

func TestCalculateTaxTopBracket(t *testing.T) {
	// Income well past the top threshold must not exhaust the walk;
	// the top bracket is unbounded.
	summary := CalculateTax(2000000, 0, StatusMFJ)
	assert.Greater(t, summary.CalculatedTax, 0.0)
	assert.Greater(t, summary.TaxDueOrRefund, 0.0)
}

func TestCalculateTaxIsPure(t *testing.T) {
	first := CalculateTax(123456.78, 9876.54, StatusHoH)
	second := CalculateTax(123456.78, 9876.54, StatusHoH)
	assert.Equal(t, first, second)
}
