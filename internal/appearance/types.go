// Package appearance infers discrete visual-style attributes from a single
// headshot image: a skin tone on a 1-10 scale plus hair, facial-hair and
// accessory indices into the style catalog.
//
// The pipeline is bytes → pixel grid → FeatureSet → Buckets → catalog
// indices. Every stage is a pure function of its input; analysis never
// fails and always lands inside the catalog's index ranges. Undecodable or
// empty input yields the default result. Independent images can be
// analyzed concurrently; the only shared state is the catalog's lazily
// built, immutable bucket index.
package appearance

import (
	"hoopvision/internal/catalog"
	"hoopvision/internal/landmark"
)

// FeatureSet carries the raw per-attribute signals extracted from one
// image. Pure data, computed fresh per call and discarded after
// classification.
type FeatureSet struct {
	// Skin segmentation aggregates.
	SkinLuminance float64 `json:"skin_luminance"`
	SkinPixels    int     `json:"skin_pixels"`

	// Hair region signals. HairPixels doubles as the hair variety seed.
	HairCoverage float64 `json:"hair_coverage"`
	HairTexture  float64 `json:"hair_texture"`
	HairPixels   int     `json:"hair_pixels"`

	// Chin region signals. ChinSkinPixels doubles as the facial-hair
	// variety seed and gates classification: below the census minimum the
	// facial-hair index is pinned to 0.
	ChinDarkRatio  float64 `json:"chin_dark_ratio"`
	ChinEdgeRatio  float64 `json:"chin_edge_ratio"`
	ChinSkinPixels int     `json:"chin_skin_pixels"`

	// Forehead band geometry. BandStart is relative to the forehead
	// window; -1 means no uniform band was found.
	BandStart      int     `json:"band_start"`
	BandHeight     int     `json:"band_height"`
	BandBrightness float64 `json:"band_brightness"`

	// Dark uniform rows at eye level, for sunglasses detection. Doubles
	// as the accessory variety seed for sunglasses.
	EyeDarkRows int `json:"eye_dark_rows"`

	// Landmark-derived bounds the signals above were measured against.
	EyebrowY int           `json:"eyebrow_y"`
	ChinTop  int           `json:"chin_top"`
	Ears     landmark.Ears `json:"ears"`
}

// Buckets holds the classified attribute buckets for one image.
type Buckets struct {
	Volume    catalog.HairVolume        `json:"volume"`
	Texture   catalog.HairTexture       `json:"texture"`
	Density   catalog.FacialHairDensity `json:"density"`
	Accessory catalog.AccessoryKind     `json:"accessory"`
}

// Result is the final appearance inference for one image.
type Result struct {
	SkinTone   int `json:"skin_tone"`   // 1-10, darker is higher
	Hair       int `json:"hair"`        // catalog hair index
	FacialHair int `json:"facial_hair"` // catalog facial-hair index
	Accessory  int `json:"accessory"`   // catalog accessory index
}

// DefaultResult is returned for undecodable or empty input: lightest skin
// tone, bald, clean shaven, no accessory.
func DefaultResult() Result {
	return Result{SkinTone: 1}
}
