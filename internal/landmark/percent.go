package landmark

import "image"

// Default region fractions, measured on typical head-and-shoulders
// headshots: hair lives in the top 35% of the frame, the chin in the
// bottom 45%.
const (
	DefaultHairFrac = 0.35
	DefaultChinFrac = 0.55
)

// PercentDetector derives regions from fixed fractions of the image
// height. It is the always-available fallback strategy.
type PercentDetector struct {
	HairFrac float64 // eyebrow line as a fraction of height
	ChinFrac float64 // chin top as a fraction of height
}

// NewPercentDetector returns a PercentDetector with the default fractions.
func NewPercentDetector() *PercentDetector {
	return &PercentDetector{HairFrac: DefaultHairFrac, ChinFrac: DefaultChinFrac}
}

// Detect implements Detector. Ear visibility is never attested.
func (d *PercentDetector) Detect(img image.Image) Regions {
	h := img.Bounds().Dy()
	return Regions{
		EyebrowY: clampRow(int(float64(h)*d.HairFrac), h),
		ChinTop:  clampRow(int(float64(h)*d.ChinFrac), h),
	}
}

func clampRow(y, h int) int {
	if y < 0 {
		return 0
	}
	if y > h {
		return h
	}
	return y
}
