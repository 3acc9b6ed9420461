package catalog

import "strings"

// HairVolume buckets how much hair mass a style carries.
type HairVolume int

const (
	VolumeNone HairVolume = iota
	VolumeLow
	VolumeMedium
	VolumeHigh
	VolumeVeryHigh
)

func (v HairVolume) String() string {
	switch v {
	case VolumeNone:
		return "none"
	case VolumeLow:
		return "low"
	case VolumeMedium:
		return "medium"
	case VolumeHigh:
		return "high"
	case VolumeVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// HairTexture buckets the surface character of a style.
type HairTexture int

const (
	TextureSmooth HairTexture = iota
	TextureWavy
	TextureCurly
	TextureAfro
	TextureDreads
)

func (t HairTexture) String() string {
	switch t {
	case TextureSmooth:
		return "smooth"
	case TextureWavy:
		return "wavy"
	case TextureCurly:
		return "curly"
	case TextureAfro:
		return "afro"
	case TextureDreads:
		return "dreads"
	default:
		return "unknown"
	}
}

// HairLength buckets how long a style is. The matcher ignores length; it
// exists for catalog introspection and asset tooling.
type HairLength int

const (
	LengthBald HairLength = iota
	LengthVeryShort
	LengthShort
	LengthMedium
	LengthLong
)

func (l HairLength) String() string {
	switch l {
	case LengthBald:
		return "bald"
	case LengthVeryShort:
		return "very_short"
	case LengthShort:
		return "short"
	case LengthMedium:
		return "medium"
	case LengthLong:
		return "long"
	default:
		return "unknown"
	}
}

// FacialHairDensity buckets how much facial hair a style carries.
type FacialHairDensity int

const (
	DensityNone FacialHairDensity = iota
	DensityStubble
	DensityGoatee
	DensityBeard
	DensityFullBeard
)

func (d FacialHairDensity) String() string {
	switch d {
	case DensityNone:
		return "none"
	case DensityStubble:
		return "stubble"
	case DensityGoatee:
		return "goatee"
	case DensityBeard:
		return "beard"
	case DensityFullBeard:
		return "full_beard"
	default:
		return "unknown"
	}
}

// AccessoryKind buckets head accessories.
type AccessoryKind int

const (
	AccessoryNone AccessoryKind = iota
	AccessoryThinBlackBand
	AccessoryThickBand
	AccessoryThinWhiteBand
	AccessorySunglasses
)

func (k AccessoryKind) String() string {
	switch k {
	case AccessoryNone:
		return "none"
	case AccessoryThinBlackBand:
		return "thin_black_band"
	case AccessoryThickBand:
		return "thick_band"
	case AccessoryThinWhiteBand:
		return "thin_white_band"
	case AccessorySunglasses:
		return "sunglasses"
	default:
		return "unknown"
	}
}

// Bucket enumeration order, for introspection surfaces that report
// per-bucket breakdowns.
var (
	Volumes        = []HairVolume{VolumeNone, VolumeLow, VolumeMedium, VolumeHigh, VolumeVeryHigh}
	Textures       = []HairTexture{TextureSmooth, TextureWavy, TextureCurly, TextureAfro, TextureDreads}
	Lengths        = []HairLength{LengthBald, LengthVeryShort, LengthShort, LengthMedium, LengthLong}
	Densities      = []FacialHairDensity{DensityNone, DensityStubble, DensityGoatee, DensityBeard, DensityFullBeard}
	AccessoryKinds = []AccessoryKind{AccessoryNone, AccessoryThinBlackBand, AccessoryThickBand, AccessoryThinWhiteBand, AccessorySunglasses}
)

// Keyword rules below classify authored catalog descriptions into buckets.
// Rules are checked in order and the first hit wins, so more specific
// vocabulary ("very large", "thin white") precedes the generic words it
// contains. Matching is case-insensitive substring containment. Every rule
// table is total via its default, so every description lands in exactly
// one bucket per dimension.

var volumeRules = []struct {
	vol  HairVolume
	keys []string
}{
	{VolumeNone, []string{"bald", "shaved head"}},
	{VolumeVeryHigh, []string{"very large", "massive", "highest volume", "puffy"}},
	{VolumeHigh, []string{"large", "high volume", "fluffy", "wild"}},
	{VolumeMedium, []string{"medium", "rounded afro"}},
	{VolumeLow, []string{"buzzcut", "fade", "minimal", "very short", "tight"}},
}

// ClassifyVolume maps a hair description to its volume bucket.
// Descriptions without volume vocabulary default to medium.
func ClassifyVolume(desc string) HairVolume {
	d := strings.ToLower(desc)
	for _, r := range volumeRules {
		for _, k := range r.keys {
			if strings.Contains(d, k) {
				return r.vol
			}
		}
	}
	return VolumeMedium
}

var textureRules = []struct {
	tex  HairTexture
	keys []string
}{
	{TextureDreads, []string{"dread", "twists", "braid"}},
	{TextureAfro, []string{"afro", "coil"}},
	{TextureCurly, []string{"curl", "ringlet"}},
	{TextureWavy, []string{"wavy", "wave"}},
}

// ClassifyTexture maps a hair description to its texture bucket.
// Descriptions without texture vocabulary default to smooth.
func ClassifyTexture(desc string) HairTexture {
	d := strings.ToLower(desc)
	for _, r := range textureRules {
		for _, k := range r.keys {
			if strings.Contains(d, k) {
				return r.tex
			}
		}
	}
	return TextureSmooth
}

var lengthRules = []struct {
	length HairLength
	keys   []string
}{
	{LengthBald, []string{"bald", "shaved head"}},
	{LengthVeryShort, []string{"buzzcut", "fade", "crew cut", "very short"}},
	{LengthLong, []string{"long", "dread", "braid", "flow"}},
	{LengthMedium, []string{"medium", "shoulder", "afro"}},
}

// ClassifyLength maps a hair description to its length bucket.
// Descriptions without length vocabulary default to short.
func ClassifyLength(desc string) HairLength {
	d := strings.ToLower(desc)
	for _, r := range lengthRules {
		for _, k := range r.keys {
			if strings.Contains(d, k) {
				return r.length
			}
		}
	}
	return LengthShort
}

var densityRules = []struct {
	density FacialHairDensity
	keys    []string
}{
	{DensityNone, []string{"clean shaven", "no facial hair"}},
	{DensityFullBeard, []string{"full", "long", "dark beard"}},
	{DensityBeard, []string{"boxed beard", "beard", "chin strap"}},
	{DensityGoatee, []string{"goatee", "soul patch", "moustache", "mustache", "chin patch"}},
	{DensityStubble, []string{"stubble", "scruff", "light", "pencil"}},
}

// ClassifyDensity maps a facial-hair description to its density bucket.
// Descriptions without density vocabulary default to none.
func ClassifyDensity(desc string) FacialHairDensity {
	d := strings.ToLower(desc)
	for _, r := range densityRules {
		for _, k := range r.keys {
			if strings.Contains(d, k) {
				return r.density
			}
		}
	}
	return DensityNone
}

var accessoryRules = []struct {
	kind AccessoryKind
	keys []string
}{
	{AccessoryNone, []string{"none", "no accessory"}},
	{AccessorySunglasses, []string{"sunglass", "goggle", "shades", "glasses"}},
	{AccessoryThinWhiteBand, []string{"thin white"}},
	{AccessoryThinBlackBand, []string{"thin black", "thin"}},
	{AccessoryThickBand, []string{"thick"}},
}

// ClassifyAccessory maps an accessory description to its kind bucket.
// Descriptions without accessory vocabulary default to thick_band, the
// broadest band family.
func ClassifyAccessory(desc string) AccessoryKind {
	d := strings.ToLower(desc)
	for _, r := range accessoryRules {
		for _, k := range r.keys {
			if strings.Contains(d, k) {
				return r.kind
			}
		}
	}
	return AccessoryThickBand
}
