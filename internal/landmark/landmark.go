// Package landmark locates the facial regions the appearance extractor
// works on: the eyebrow line bounding the hair region, the chin region
// holding facial hair, and (when a backend can attest it) ear visibility.
//
// Two detectors implement the same interface. PercentDetector derives the
// regions from fixed fractions of the image height and is always available.
// CascadeDetector refines them from Haar-cascade face/eye detections and is
// constructed only when the cascade files load successfully. Callers pick
// one at construction time and depend only on the interface.
package landmark

import (
	"image"

	"hoopvision/pkg/geometry"
)

// Ears reports per-ear visibility. Known is false when the detector cannot
// attest either ear, in which case Left/Right carry no meaning.
type Ears struct {
	Known        bool
	LeftVisible  bool
	RightVisible bool
}

// Regions bounds the facial areas used during feature extraction.
// Row coordinates are in image space, top-down.
type Regions struct {
	// EyebrowY is the first row below the hair region.
	EyebrowY int
	// ChinTop is the first row of the chin region.
	ChinTop int
	// Chin optionally restricts the chin region to a polygon. When nil the
	// chin region is all rows from ChinTop down.
	Chin []geometry.Point2D
	// Ears carries ear visibility when the backend can attest it.
	Ears Ears
}

// Detector yields facial regions for a headshot. Implementations never
// fail: when nothing can be detected they fall back to fixed-fraction
// regions so extraction always has bounds to work with.
type Detector interface {
	Detect(img image.Image) Regions
}
