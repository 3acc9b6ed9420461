package appearance

import (
	"image"

	"hoopvision/internal/landmark"
	"hoopvision/pkg/geometry"
	"hoopvision/pkg/imgutil"
)

// extractFacialHair fills the chin darkness and edge signals. The chin
// region is every row from ChinTop down, clipped to the chin polygon when
// the landmark backend supplies one. Below the census minimum the ratios
// stay zero; classification pins that case to clean shaven.
func extractFacialHair(fs *FeatureSet, px *image.NRGBA, sm *skinMask, reg landmark.Regions, p Params) {
	w, h := sm.w, sm.h
	top := fs.ChinTop
	if top < 0 {
		top = 0
	}
	if top >= h || w == 0 {
		return
	}
	rows := h - top

	inChin := func(x, y int) bool {
		if reg.Chin == nil {
			return true
		}
		return geometry.PointInPolygon(geometry.NewPoint2D(float64(x), float64(y)), reg.Chin)
	}

	// Census pass: chin skin pixels, their summed brightness, and the
	// region's grayscale for the edge pass.
	chinMask := make([]bool, w*rows)
	grayChin := image.NewGray(image.Rect(0, 0, w, rows))
	count := 0
	var sum uint64
	for y := top; y < h; y++ {
		row := px.Pix[y*px.Stride : y*px.Stride+w*4]
		out := grayChin.Pix[(y-top)*grayChin.Stride : (y-top)*grayChin.Stride+w]
		for x := 0; x < w; x++ {
			r, g, b := row[x*4], row[x*4+1], row[x*4+2]
			out[x] = imgutil.Luma(r, g, b)
			if !sm.at(x, y) || !inChin(x, y) {
				continue
			}
			chinMask[(y-top)*w+x] = true
			count++
			sum += uint64(r) + uint64(g) + uint64(b)
		}
	}
	fs.ChinSkinPixels = count
	if count < p.ChinMinSkinPixels {
		return
	}

	// Facial hair is significantly darker than the surrounding skin, with
	// a threshold floor so very dark skin is not all counted as hair.
	meanBrightness := float64(sum) / float64(3*count)
	darkThresh := p.DarkThreshFloor
	if t := meanBrightness * p.DarkThreshScale; t > darkThresh {
		darkThresh = t
	}
	dark := 0
	for i, isSkin := range chinMask {
		if isSkin && float64(grayChin.Pix[i]) < darkThresh {
			dark++
		}
	}
	fs.ChinDarkRatio = float64(dark) / float64(count)

	// Beards also carry texture: count edge pixels over chin skin.
	mags := imgutil.SobelMagnitudes(grayChin)
	edges := 0
	for i, mag := range mags {
		if mag >= p.ChinEdgeMin && chinMask[i] {
			edges++
		}
	}
	fs.ChinEdgeRatio = float64(edges) / float64(count)
}
