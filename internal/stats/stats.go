// Package stats converts season box-score lines into renderer attribute
// ratings. Each stat is scored against a league population by z-score,
// then mapped onto the 25..99 rating scale used by the sprite renderer.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Rating scale. A league-average value rates RatingBase; each standard
// deviation above or below moves the rating by RatingSpread points.
const (
	RatingBase   = 70
	RatingSpread = 10
	RatingMin    = 25
	RatingMax    = 99
)

// Range describes the league population of one stat: its mean, spread and
// direction. Stats where smaller is better (turnovers) set LowerIsBetter
// so that their z-scores reward low values.
type Range struct {
	Mean          float64
	Std           float64
	LowerIsBetter bool
}

// FitRange fits a Range to a sample population. Degenerate populations
// (fewer than two samples, or zero variance) get a unit spread so that
// every value rates league average rather than blowing up.
func FitRange(samples []float64, lowerIsBetter bool) Range {
	mean, std := stat.MeanStdDev(samples, nil)
	if math.IsNaN(mean) {
		mean = 0
	}
	if math.IsNaN(std) || std <= 0 {
		std = 1
	}
	return Range{Mean: mean, Std: std, LowerIsBetter: lowerIsBetter}
}

// Z returns the directed z-score of value within the range.
func (r Range) Z(value float64) float64 {
	std := r.Std
	if std <= 0 {
		std = 1
	}
	z := (value - r.Mean) / std
	if r.LowerIsBetter {
		z = -z
	}
	return z
}

// Rating maps value onto the 25..99 scale.
func (r Range) Rating(value float64) int {
	return RatingFromZ(r.Z(value))
}

// RatingFromZ maps a (possibly blended) z-score onto the 25..99 scale.
func RatingFromZ(z float64) int {
	v := int(math.Round(RatingBase + z*RatingSpread))
	if v < RatingMin {
		return RatingMin
	}
	if v > RatingMax {
		return RatingMax
	}
	return v
}
