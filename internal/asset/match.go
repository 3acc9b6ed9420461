package asset

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// AvgColorful returns the cell's average color in colorful's 0..1 space.
func (c CellFeature) AvgColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.AvgColor[0]) / 255,
		G: float64(c.AvgColor[1]) / 255,
		B: float64(c.AvgColor[2]) / 255,
	}
}

// NearestByColor returns the position in cells of the cell whose average
// color is closest to target in Lab space, or -1 for an empty slice.
func NearestByColor(cells []CellFeature, target colorful.Color) int {
	best, bestDist := -1, math.MaxFloat64
	for i, c := range cells {
		if d := target.DistanceLab(c.AvgColorful()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
