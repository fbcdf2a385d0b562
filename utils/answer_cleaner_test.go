package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAmount(t *testing.T) {
	assert.Equal(t, 1234.56, CleanAmount("$1,234.56 approx"))
	assert.Equal(t, 0.0, CleanAmount("no numbers here"))
	assert.Equal(t, 0.0, CleanAmount(""))
	assert.Equal(t, 500.0, CleanAmount("$500"))
	assert.Equal(t, 65000.0, CleanAmount("Box 1: 65,000.00"))
}

func TestCleanAmountTakesLargestNumber(t *testing.T) {
	// Answers sometimes carry a box number next to the real amount;
	// the largest number wins.
	assert.Equal(t, 1200.0, CleanAmount("12 and 1,200"))
	assert.Equal(t, 48500.75, CleanAmount("1 Wages, tips 48,500.75"))
}

func TestCleanAmountIdempotent(t *testing.T) {
	once := CleanAmount("1234.56")
	assert.Equal(t, 1234.56, once)
	assert.Equal(t, once, CleanAmount("1234.56"))
}
