package appearance

import (
	"image"

	"hoopvision/pkg/imgutil"
)

// extractHair fills the hair coverage and texture signals. The hair region
// is every row above the eyebrow line; a hair pixel is whatever is neither
// skin nor background there.
func extractHair(fs *FeatureSet, px *image.NRGBA, sm *skinMask, opaque bool, p Params) {
	w := sm.w
	rows := fs.EyebrowY
	if rows <= 0 || w == 0 {
		return
	}

	// One pass builds the hair mask and the region's grayscale together.
	// Background is keyed on alpha for transparent sources and on
	// near-black/near-white luma for opaque ones.
	hairMask := make([]bool, w*rows)
	grayHair := image.NewGray(image.Rect(0, 0, w, rows))
	hairPixels := 0
	for y := 0; y < rows; y++ {
		row := px.Pix[y*px.Stride : y*px.Stride+w*4]
		out := grayHair.Pix[y*grayHair.Stride : y*grayHair.Stride+w]
		for x := 0; x < w; x++ {
			g := imgutil.Luma(row[x*4], row[x*4+1], row[x*4+2])
			out[x] = g
			if sm.at(x, y) {
				continue
			}
			var bg bool
			if !opaque {
				bg = int(row[x*4+3]) < p.AlphaOpaqueMin
			} else {
				bg = int(g) < p.DarkBGMax || int(g) > p.BrightBGMin
			}
			if bg {
				continue
			}
			hairMask[y*w+x] = true
			hairPixels++
		}
	}
	fs.HairPixels = hairPixels

	// Coverage is measured against head area, not frame area.
	headWidth := sm.colSpan
	if float64(headWidth) < p.HeadWidthMinFrac*float64(w) {
		headWidth = int(float64(w) * p.HeadWidthFallbackFrac)
	}
	if headArea := rows * headWidth; headArea > 0 {
		fs.HairCoverage = float64(hairPixels) / float64(headArea)
		if fs.HairCoverage > 1 {
			fs.HairCoverage = 1
		}
	}

	if hairPixels == 0 {
		return
	}

	// Texture is edge density inside the hair mask, normalized so the
	// score saturates at the empirical density ceiling.
	mags := imgutil.SobelMagnitudes(grayHair)
	edges := 0
	for i, mag := range mags {
		if mag >= p.HairEdgeMin && hairMask[i] {
			edges++
		}
	}
	score := float64(edges) / float64(hairPixels) / p.TextureNorm
	if score > 1 {
		score = 1
	}
	fs.HairTexture = score
}
