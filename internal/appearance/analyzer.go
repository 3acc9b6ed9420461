package appearance

import (
	"image"
	"sync"

	"go.uber.org/zap"

	"hoopvision/internal/catalog"
	"hoopvision/internal/imgio"
	"hoopvision/internal/landmark"
	"hoopvision/pkg/imgutil"
)

// Analyzer runs the full pipeline against one catalog. The zero value is
// not usable; construct with New. Analyzers are safe for concurrent use.
type Analyzer struct {
	params  Params
	det     landmark.Detector
	matcher *catalog.Matcher
	log     *zap.Logger
}

// New returns an Analyzer matching against cat with the given tuning
// parameters. Regions come from the fixed-fraction detector and logging
// is off until WithDetector and WithLogger override them.
func New(cat *catalog.Catalog, params Params) *Analyzer {
	return &Analyzer{
		params:  params,
		det:     landmark.NewPercentDetector(),
		matcher: catalog.NewMatcher(cat),
		log:     zap.NewNop(),
	}
}

// WithDetector returns a copy of the analyzer using det for region
// detection.
func (a Analyzer) WithDetector(det landmark.Detector) *Analyzer {
	a.det = det
	return &a
}

// WithLogger returns a copy of the analyzer logging through log.
func (a Analyzer) WithLogger(log *zap.Logger) *Analyzer {
	a.log = log
	return &a
}

// Analyze decodes data and runs the pipeline. It never fails: empty or
// undecodable input yields DefaultResult.
func (a *Analyzer) Analyze(data []byte) Result {
	if len(data) == 0 {
		return DefaultResult()
	}
	img, err := imgio.Decode(data)
	if err != nil {
		a.log.Debug("undecodable image, using default appearance", zap.Error(err))
		return DefaultResult()
	}
	return a.AnalyzeImage(img)
}

// AnalyzeImage runs the pipeline on an already decoded image.
func (a *Analyzer) AnalyzeImage(img image.Image) Result {
	if img == nil {
		return DefaultResult()
	}
	fs := a.ExtractFeatures(img)
	b := ClassifyFeatures(fs, a.params)

	res := Result{
		SkinTone: skinTone(fs.SkinLuminance, fs.SkinPixels > 0),
		Hair:     a.matcher.MatchHair(b.Volume, b.Texture, fs.HairPixels),
	}
	// Too little chin skin means the chin signals are noise. Pin the
	// facial hair slot instead of matching on them.
	if fs.ChinSkinPixels >= a.params.ChinMinSkinPixels {
		res.FacialHair = a.matcher.MatchFacialHair(b.Density, fs.ChinSkinPixels)
	}
	res.Accessory = a.matchAccessory(b.Accessory, fs)

	a.log.Debug("appearance analyzed",
		zap.Int("skin_tone", res.SkinTone),
		zap.Int("hair", res.Hair),
		zap.Int("facial_hair", res.FacialHair),
		zap.Int("accessory", res.Accessory),
		zap.Stringer("volume", b.Volume),
		zap.Stringer("texture", b.Texture),
		zap.Stringer("density", b.Density),
		zap.Stringer("accessory_kind", b.Accessory),
		zap.Float64("hair_coverage", fs.HairCoverage),
		zap.Float64("hair_texture", fs.HairTexture),
		zap.Int("skin_pixels", fs.SkinPixels),
	)
	return res
}

// matchAccessory seeds the accessory pick from the signal that triggered
// the bucket: band height for headbands, dark eye rows for sunglasses.
func (a *Analyzer) matchAccessory(k catalog.AccessoryKind, fs FeatureSet) int {
	var seed int
	switch k {
	case catalog.AccessoryThinBlackBand, catalog.AccessoryThinWhiteBand, catalog.AccessoryThickBand:
		seed = fs.BandHeight
	case catalog.AccessorySunglasses:
		seed = fs.EyeDarkRows
	}
	return a.matcher.MatchAccessory(k, seed)
}

// ExtractFeatures measures the raw signals without classifying them.
// Exposed for threshold tuning and tests.
func (a *Analyzer) ExtractFeatures(img image.Image) FeatureSet {
	px := imgutil.ToNRGBA(img)
	opaque := imgutil.IsOpaque(img)
	reg := a.det.Detect(px)
	sm := buildSkinMask(px, a.params)

	fs := FeatureSet{
		SkinLuminance: sm.luminance(),
		SkinPixels:    sm.count,
		EyebrowY:      reg.EyebrowY,
		ChinTop:       reg.ChinTop,
		Ears:          reg.Ears,
	}
	extractHair(&fs, px, sm, opaque, a.params)
	extractFacialHair(&fs, px, sm, reg, a.params)
	extractAccessory(&fs, imgutil.ToGray(px), a.params)
	return fs
}

// SkinTone decodes data and returns only the skin tone channel, on the
// 1..10 scale. Like Analyze it never fails; bad input reads as tone 1.
func (a *Analyzer) SkinTone(data []byte) int {
	if len(data) == 0 {
		return DefaultResult().SkinTone
	}
	img, err := imgio.Decode(data)
	if err != nil {
		return DefaultResult().SkinTone
	}
	return a.SkinToneImage(img)
}

// SkinToneImage returns only the skin tone channel for an already decoded
// image.
func (a *Analyzer) SkinToneImage(img image.Image) int {
	if img == nil {
		return DefaultResult().SkinTone
	}
	px := imgutil.ToNRGBA(img)
	sm := buildSkinMask(px, a.params)
	return skinTone(sm.luminance(), sm.count > 0)
}

var (
	defaultOnce     sync.Once
	defaultAnalyzer *Analyzer
)

// DefaultAnalyzer returns the shared analyzer over the embedded catalog
// with default parameters.
func DefaultAnalyzer() *Analyzer {
	defaultOnce.Do(func() {
		defaultAnalyzer = New(catalog.Default(), DefaultParams())
	})
	return defaultAnalyzer
}

// Analyze runs the default analyzer on raw image bytes.
func Analyze(data []byte) Result {
	return DefaultAnalyzer().Analyze(data)
}

// SkinTone runs the default analyzer on raw image bytes and returns only
// the skin tone channel.
func SkinTone(data []byte) int {
	return DefaultAnalyzer().SkinTone(data)
}
