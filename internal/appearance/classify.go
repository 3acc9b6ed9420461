package appearance

import (
	"hoopvision/internal/catalog"
	"hoopvision/internal/landmark"
)

// The bucket functions below are total: every real-valued signal maps to
// exactly one bucket, so classification can never fail.

// VolumeBucket maps hair coverage to its volume bucket.
func VolumeBucket(coverage float64, p Params) catalog.HairVolume {
	switch {
	case coverage < p.VolumeNoneMax:
		return catalog.VolumeNone
	case coverage < p.VolumeLowMax:
		return catalog.VolumeLow
	case coverage < p.VolumeMediumMax:
		return catalog.VolumeMedium
	case coverage < p.VolumeHighMax:
		return catalog.VolumeHigh
	default:
		return catalog.VolumeVeryHigh
	}
}

// TextureBucket maps the edge-density score to a texture bucket. Sparse
// hair reads as smooth whatever the score says; a near-bald scalp has no
// texture worth classifying.
func TextureBucket(score, coverage float64, p Params) catalog.HairTexture {
	if coverage < p.TextureMinCoverage {
		return catalog.TextureSmooth
	}
	switch {
	case score < p.TextureSmoothMax:
		return catalog.TextureSmooth
	case score < p.TextureWavyMax:
		return catalog.TextureWavy
	case score < p.TextureCurlyMax:
		return catalog.TextureCurly
	case score < p.TextureAfroMax:
		return catalog.TextureAfro
	default:
		return catalog.TextureDreads
	}
}

// FacialHairScore combines the chin darkness and edge ratios into one
// density signal.
func FacialHairScore(darkRatio, edgeRatio float64, p Params) float64 {
	return p.DarkWeight*darkRatio + p.EdgeWeight*edgeRatio
}

// DensityBucket maps the combined facial-hair score to a density bucket.
func DensityBucket(score float64, p Params) catalog.FacialHairDensity {
	switch {
	case score < p.FacialNoneMax:
		return catalog.DensityNone
	case score < p.FacialStubbleMax:
		return catalog.DensityStubble
	case score < p.FacialGoateeMax:
		return catalog.DensityGoatee
	case score < p.FacialBeardMax:
		return catalog.DensityBeard
	default:
		return catalog.DensityFullBeard
	}
}

// AccessoryBucket walks the accessory decision tree: an accepted forehead
// band classifies by brightness, otherwise enough dark eye rows mean
// sunglasses, otherwise nothing.
func AccessoryBucket(fs FeatureSet, p Params) catalog.AccessoryKind {
	if fs.BandHeight >= p.BandMinHeight && fs.BandStart > p.BandMinStart {
		switch {
		case fs.BandBrightness < p.BandDarkMax:
			return catalog.AccessoryThinBlackBand
		case fs.BandBrightness > p.BandBrightMin:
			return catalog.AccessoryThinWhiteBand
		default:
			return catalog.AccessoryThickBand
		}
	}
	if fs.EyeDarkRows >= p.EyeMinDarkRows {
		return catalog.AccessorySunglasses
	}
	return catalog.AccessoryNone
}

// ApplyEarNudge bumps the volume bucket when hair occludes the ears. Both
// ears hidden bumps one level from anywhere; one hidden bumps only out of
// the sparse buckets, where occlusion is most informative.
func ApplyEarNudge(v catalog.HairVolume, ears landmark.Ears) catalog.HairVolume {
	if !ears.Known {
		return v
	}
	hidden := 0
	if !ears.LeftVisible {
		hidden++
	}
	if !ears.RightVisible {
		hidden++
	}
	switch {
	case hidden == 2:
		return bumpVolume(v)
	case hidden == 1 && (v == catalog.VolumeNone || v == catalog.VolumeLow):
		return bumpVolume(v)
	}
	return v
}

func bumpVolume(v catalog.HairVolume) catalog.HairVolume {
	if v >= catalog.VolumeVeryHigh {
		return catalog.VolumeVeryHigh
	}
	return v + 1
}

// ClassifyFeatures maps a FeatureSet to its buckets, ear nudge included.
func ClassifyFeatures(fs FeatureSet, p Params) Buckets {
	vol := ApplyEarNudge(VolumeBucket(fs.HairCoverage, p), fs.Ears)
	return Buckets{
		Volume:    vol,
		Texture:   TextureBucket(fs.HairTexture, fs.HairCoverage, p),
		Density:   DensityBucket(FacialHairScore(fs.ChinDarkRatio, fs.ChinEdgeRatio, p), p),
		Accessory: AccessoryBucket(fs, p),
	}
}
