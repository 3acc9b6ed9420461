package appearance

import (
	"image"
	"math"
)

// skinMask marks the pixels inside the YCrCb skin window and keeps the
// aggregates the extractors need: pixel count, column span and color sums
// for the mean skin color.
type skinMask struct {
	w, h    int
	bits    []bool
	count   int
	colSpan int

	sumR, sumG, sumB uint64
}

// buildSkinMask segments px in one pass. The column span counts columns
// holding at least one skin pixel anywhere in the frame; it estimates head
// width for hair coverage.
func buildSkinMask(px *image.NRGBA, p Params) *skinMask {
	w, h := px.Rect.Dx(), px.Rect.Dy()
	m := &skinMask{w: w, h: h, bits: make([]bool, w*h)}
	cols := make([]bool, w)

	for y := 0; y < h; y++ {
		row := px.Pix[y*px.Stride : y*px.Stride+w*4]
		for x := 0; x < w; x++ {
			r, g, b := row[x*4], row[x*4+1], row[x*4+2]
			if !p.isSkin(r, g, b) {
				continue
			}
			m.bits[y*w+x] = true
			m.count++
			cols[x] = true
			m.sumR += uint64(r)
			m.sumG += uint64(g)
			m.sumB += uint64(b)
		}
	}
	for _, c := range cols {
		if c {
			m.colSpan++
		}
	}
	return m
}

func (m *skinMask) at(x, y int) bool { return m.bits[y*m.w+x] }

// luminance returns the BT.601 luma of the mean skin color, 0 when the
// mask is empty.
func (m *skinMask) luminance() float64 {
	if m.count == 0 {
		return 0
	}
	n := float64(m.count)
	r := float64(m.sumR) / n
	g := float64(m.sumG) / n
	b := float64(m.sumB) / n
	return 0.299*r + 0.587*g + 0.114*b
}

// isSkin tests an RGB triple against the YCrCb window. The conversion is
// the 8-bit full-range one: Cr and Cb are centered on 128 and rounded to
// integers before comparison.
func (p Params) isSkin(r, g, b uint8) bool {
	rf, gf, bf := float64(r), float64(g), float64(b)
	y := 0.299*rf + 0.587*gf + 0.114*bf
	cr := math.Round((rf-y)*0.713 + 128)
	cb := math.Round((bf-y)*0.564 + 128)
	return cr >= float64(p.SkinCrMin) && cr <= float64(p.SkinCrMax) &&
		cb >= float64(p.SkinCbMin) && cb <= float64(p.SkinCbMax)
}

// skinTone maps mean skin luminance to the 1-10 scale, darker is higher.
// Images without any skin pixels read as the lightest tone.
func skinTone(lum float64, hasSkin bool) int {
	if !hasSkin {
		return 1
	}
	tone := int(math.Round(1 + (255-lum)/255*9))
	if tone < 1 {
		tone = 1
	}
	if tone > 10 {
		tone = 10
	}
	return tone
}
