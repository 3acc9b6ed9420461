package appearance

// DefaultParams returns default extraction and classification parameters.
// These are tuned for pro-sports headshots: head-and-shoulders framing,
// plain or transparent background, the face roughly centered.
func DefaultParams() Params {
	return Params{
		// YCrCb skin window. The classic chroma box: Cr and Cb are
		// centered on 128, luma is left unrestricted so the window holds
		// across lighting and skin tones.
		SkinCrMin: 133,
		SkinCrMax: 173,
		SkinCbMin: 77,
		SkinCbMax: 127,

		// Background filtering in the hair region. Transparent sources
		// key on alpha; opaque ones on near-black and near-white luma.
		AlphaOpaqueMin: 128,
		DarkBGMax:      15,
		BrightBGMin:    235,

		// Head width from the skin-mask column span. A span under 30% of
		// the frame is an implausible head; assume 60% instead.
		HeadWidthMinFrac:      0.3,
		HeadWidthFallbackFrac: 0.6,

		// Hair coverage → volume. Coverage runs low even on full heads of
		// hair: dark hair bordering skin reads as skin, and dreads are
		// sparse in the hair region.
		VolumeNoneMax:   0.03,
		VolumeLowMax:    0.10,
		VolumeMediumMax: 0.20,
		VolumeHighMax:   0.35,

		// Hair edge density → texture. Edge densities top out near 0.3 in
		// practice, so that is where the score saturates.
		HairEdgeMin:        150,
		TextureNorm:        0.3,
		TextureMinCoverage: 0.05,
		TextureSmoothMax:   0.2,
		TextureWavyMax:     0.4,
		TextureCurlyMax:    0.6,
		TextureAfroMax:     0.8,

		// Facial hair. The dark threshold adapts to skin brightness with
		// a floor for very dark skin; edges weigh more than darkness
		// since beards are textured even when barely darker than skin.
		ChinMinSkinPixels: 100,
		DarkThreshFloor:   60,
		DarkThreshScale:   0.5,
		ChinEdgeMin:       80,
		DarkWeight:        0.4,
		EdgeWeight:        0.6,
		FacialNoneMax:     0.02,
		FacialStubbleMax:  0.05,
		FacialGoateeMax:   0.10,
		FacialBeardMax:    0.18,

		// Forehead band detection. 8+ uniform rows avoids hairline false
		// positives; a start above row 5 rejects bands hugging the top
		// edge, which are background, not headband.
		ForeheadTopFrac:    0.10,
		ForeheadBottomFrac: 0.30,
		BandStdMax:         12,
		BandMinHeight:      8,
		BandMinStart:       5,
		BandDarkMax:        60,
		BandBrightMin:      180,

		// Sunglasses: several very dark, very uniform rows at eye level.
		EyeTopFrac:     0.35,
		EyeBottomFrac:  0.45,
		EyeDarkMax:     40,
		EyeStdMax:      20,
		EyeMinDarkRows: 5,
	}
}

// Params holds every tunable of the extraction and classification stages.
type Params struct {
	// YCrCb skin segmentation window (inclusive bounds).
	SkinCrMin, SkinCrMax int
	SkinCbMin, SkinCbMax int

	// Background filtering in the hair region.
	AlphaOpaqueMin int // alpha below this is background (transparent sources)
	DarkBGMax      int // luma below this is background (opaque sources)
	BrightBGMin    int // luma above this is background (opaque sources)

	// Head width estimation from the skin-mask column span.
	HeadWidthMinFrac      float64
	HeadWidthFallbackFrac float64

	// Hair coverage → volume thresholds (upper bounds, ascending).
	VolumeNoneMax   float64
	VolumeLowMax    float64
	VolumeMediumMax float64
	VolumeHighMax   float64

	// Hair edge density → texture.
	HairEdgeMin        int     // Sobel magnitude counted as an edge
	TextureNorm        float64 // edge density where the score saturates at 1
	TextureMinCoverage float64 // below this coverage texture is smooth
	TextureSmoothMax   float64
	TextureWavyMax     float64
	TextureCurlyMax    float64
	TextureAfroMax     float64

	// Facial hair extraction and classification.
	ChinMinSkinPixels int     // minimum chin skin census to classify at all
	DarkThreshFloor   float64 // dark-pixel threshold floor
	DarkThreshScale   float64 // dark threshold as a fraction of chin brightness
	ChinEdgeMin       int     // Sobel magnitude counted as an edge
	DarkWeight        float64
	EdgeWeight        float64
	FacialNoneMax     float64
	FacialStubbleMax  float64
	FacialGoateeMax   float64
	FacialBeardMax    float64

	// Forehead band detection.
	ForeheadTopFrac    float64
	ForeheadBottomFrac float64
	BandStdMax         float64 // row std below this counts as uniform
	BandMinHeight      int     // minimum uniform rows for a band
	BandMinStart       int     // band must start below this window row
	BandDarkMax        float64 // band brightness below this is a black band
	BandBrightMin      float64 // band brightness above this is a white band

	// Sunglasses detection at eye level.
	EyeTopFrac     float64
	EyeBottomFrac  float64
	EyeDarkMax     float64
	EyeStdMax      float64
	EyeMinDarkRows int
}

// WithSkinWindow returns a copy of params with a custom YCrCb skin window.
// Useful when a sprite pipeline renders skin outside the photographic
// chroma box.
func (p Params) WithSkinWindow(crMin, crMax, cbMin, cbMax int) Params {
	p.SkinCrMin = crMin
	p.SkinCrMax = crMax
	p.SkinCbMin = cbMin
	p.SkinCbMax = cbMax
	return p
}

// WithVolumeThresholds returns a copy of params with custom coverage
// thresholds. Bounds must ascend: none < low < medium < high.
func (p Params) WithVolumeThresholds(none, low, medium, high float64) Params {
	p.VolumeNoneMax = none
	p.VolumeLowMax = low
	p.VolumeMediumMax = medium
	p.VolumeHighMax = high
	return p
}

// WithBandRule returns a copy of params with a custom headband acceptance
// rule.
func (p Params) WithBandRule(minHeight, minStart int, stdMax float64) Params {
	p.BandMinHeight = minHeight
	p.BandMinStart = minStart
	p.BandStdMax = stdMax
	return p
}
