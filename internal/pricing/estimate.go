// Package pricing implements the deterministic market-price heuristic shown
// next to the sell form, and the classification of an asking price against
// the suggested band.
package pricing

import (
	"math"
	"time"
)

// BasePrice is the reference price of a current-year, zero-mileage car in
// good condition, in VND.
const BasePrice = 500_000_000

const (
	depreciationPerYear = 0.10
	mileagePenaltyStep  = 10_000 // km per 5% penalty step
	mileagePenaltyRate  = 0.05
	mileageFactorFloor  = 0.5
	rangeSpread         = 0.15
)

var conditionMultipliers = map[string]float64{
	"Excellent": 1.10,
	"Good":      1.00,
	"Fair":      0.85,
	"Poor":      0.70,
}

// Range is a suggested price band around the estimated average.
type Range struct {
	Min     int64
	Max     int64
	Average float64
}

// Estimate computes the suggested band for a car of the given model year,
// mileage and condition.
//
// Future model years fall out of the same formula: a negative age makes the
// depreciation factor exceed one, so the average lands above BasePrice with
// no special-casing. Unrecognized conditions multiply by 1.0.
func Estimate(year, mileageKm int, condition string) Range {
	return estimateAt(time.Now().Year(), year, mileageKm, condition)
}

func estimateAt(currentYear, year, mileageKm int, condition string) Range {
	age := currentYear - year
	avg := BasePrice * math.Pow(1-depreciationPerYear, float64(age))

	mileageFactor := 1 - float64(mileageKm)/mileagePenaltyStep*mileagePenaltyRate
	avg *= math.Max(mileageFactor, mileageFactorFloor)

	if mult, ok := conditionMultipliers[condition]; ok {
		avg *= mult
	}

	return Range{
		Min:     int64(math.Round(avg * (1 - rangeSpread))),
		Max:     int64(math.Round(avg * (1 + rangeSpread))),
		Average: avg,
	}
}

// Verdict classifies an asking price against a Range.
type Verdict struct {
	Band        Band
	DiffPercent int // rounded distance from the average, always >= 0
}

// Band is the classification bucket.
type Band string

const (
	BandAbove  Band = "above"
	BandWithin Band = "within"
	BandBelow  Band = "below"
)

// Compare places asking within r. The percentage distance is measured from
// the average, not from the violated bound.
func Compare(asking int64, r Range) Verdict {
	switch {
	case float64(asking) > float64(r.Max):
		return Verdict{
			Band:        BandAbove,
			DiffPercent: int(math.Round((float64(asking) - r.Average) / r.Average * 100)),
		}
	case float64(asking) < float64(r.Min):
		return Verdict{
			Band:        BandBelow,
			DiffPercent: int(math.Round((r.Average - float64(asking)) / r.Average * 100)),
		}
	default:
		return Verdict{Band: BandWithin}
	}
}
