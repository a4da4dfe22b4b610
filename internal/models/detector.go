package models

import (
	"math"
	"strconv"
)

// ChangeOutcome classifies a price re-check. The four outcomes are mutually
// exclusive; only Dropped may produce an alert.
type ChangeOutcome int

const (
	Unchanged ChangeOutcome = iota
	Invalid
	Dropped
	Increased
)

func (o ChangeOutcome) String() string {
	switch o {
	case Invalid:
		return "invalid"
	case Dropped:
		return "dropped"
	case Increased:
		return "increased"
	default:
		return "unchanged"
	}
}

// PriceChange is the classification of a single (oldPrice, newPrice) pair.
// SavingsPercent and SavedAmount carry the magnitude of the change for both
// drops and increases; callers decide what to do with increases.
type PriceChange struct {
	Outcome        ChangeOutcome
	OldPrice       float64
	NewPrice       float64
	SavingsPercent string
	SavedAmount    string
	SavedCents     int64
}

// Classify compares a new price reading against the current price.
// It performs no mutation; the registry has already filtered what gets
// persisted, this only decides what the change means.
func Classify(oldPrice, newPrice float64) PriceChange {
	c := PriceChange{OldPrice: oldPrice, NewPrice: newPrice}
	switch {
	case newPrice <= 0:
		c.Outcome = Invalid
	case newPrice == oldPrice:
		c.Outcome = Unchanged
	case newPrice < oldPrice:
		c.Outcome = Dropped
	default:
		c.Outcome = Increased
	}

	if c.Outcome == Dropped || c.Outcome == Increased {
		diff := math.Abs(oldPrice - newPrice)
		c.SavingsPercent = formatPercent(diff / oldPrice * 100)
		c.SavedCents = toCents(diff)
		c.SavedAmount = FormatCents(c.SavedCents)
	}
	return c
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FormatCents renders integer cents as a 2-decimal amount string.
func FormatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}

// ParseCents converts a 2-decimal amount string back to cents. Malformed
// input counts as zero, matching the default-on-missing storage policy.
func ParseCents(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return toCents(v)
}
