package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Dropped(t *testing.T) {
	c := Classify(100, 80)
	assert.Equal(t, Dropped, c.Outcome)
	assert.Equal(t, "20.0", c.SavingsPercent)
	assert.Equal(t, "20.00", c.SavedAmount)
	assert.Equal(t, int64(2000), c.SavedCents)
}

func TestClassify_Increased(t *testing.T) {
	c := Classify(80, 100)
	assert.Equal(t, Increased, c.Outcome)
	assert.Equal(t, "25.0", c.SavingsPercent)
	assert.Equal(t, "20.00", c.SavedAmount)
}

func TestClassify_Unchanged(t *testing.T) {
	c := Classify(50, 50)
	assert.Equal(t, Unchanged, c.Outcome)
	assert.Empty(t, c.SavingsPercent)
	assert.Empty(t, c.SavedAmount)
	assert.Zero(t, c.SavedCents)
}

func TestClassify_InvalidZeroAndNegative(t *testing.T) {
	assert.Equal(t, Invalid, Classify(50, 0).Outcome)
	assert.Equal(t, Invalid, Classify(50, -3).Outcome)
}

func TestClassify_PercentRounding(t *testing.T) {
	// 10/30 = 33.333...% rounds to one decimal
	c := Classify(30, 20)
	assert.Equal(t, "33.3", c.SavingsPercent)
	assert.Equal(t, "10.00", c.SavedAmount)

	// 2/3 = 66.666...%
	c = Classify(3, 1)
	assert.Equal(t, "66.7", c.SavingsPercent)
	assert.Equal(t, "2.00", c.SavedAmount)
}

func TestClassify_RealWorldPrices(t *testing.T) {
	c := Classify(19.99, 14.49)
	assert.Equal(t, Dropped, c.Outcome)
	assert.Equal(t, "27.5", c.SavingsPercent)
	assert.Equal(t, "5.50", c.SavedAmount)
	assert.Equal(t, int64(550), c.SavedCents)
}

func TestChangeOutcome_String(t *testing.T) {
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "dropped", Dropped.String())
	assert.Equal(t, "increased", Increased.String())
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "123.45", FormatCents(12345))
}

func TestParseCents(t *testing.T) {
	assert.Equal(t, int64(12345), ParseCents("123.45"))
	assert.Equal(t, int64(0), ParseCents(""))
	assert.Equal(t, int64(0), ParseCents("not-a-number"))
	assert.Equal(t, int64(100), ParseCents("1"))
}

func TestCentsRoundTripNoDrift(t *testing.T) {
	// Accumulating many 0.1 amounts must not drift the way float addition does
	var total int64
	for i := 0; i < 1000; i++ {
		total += Classify(10.1, 10.0).SavedCents
	}
	assert.Equal(t, "100.00", FormatCents(total))
}
