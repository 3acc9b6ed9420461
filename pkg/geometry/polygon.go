package geometry

import (
	"math"
	"sort"
)

// PointInPolygon tests if a point is inside a polygon using ray casting.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right intersects edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// SortAroundCentroid orders points by polar angle around their centroid,
// producing a simple (non-self-intersecting) polygon from an unordered
// point set. The input slice is not modified.
func SortAroundCentroid(points []Point2D) []Point2D {
	if len(points) < 3 {
		out := make([]Point2D, len(points))
		copy(out, points)
		return out
	}

	c := Centroid(points)
	sorted := make([]Point2D, len(points))
	copy(sorted, points)

	sort.Slice(sorted, func(i, j int) bool {
		ai := math.Atan2(sorted[i].Y-c.Y, sorted[i].X-c.X)
		aj := math.Atan2(sorted[j].Y-c.Y, sorted[j].X-c.X)
		if ai != aj {
			return ai < aj
		}
		// Ties broken by distance so the order is fully deterministic.
		return c.Distance(sorted[i]) < c.Distance(sorted[j])
	})

	return sorted
}
