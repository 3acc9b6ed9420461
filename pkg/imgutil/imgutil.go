// Package imgutil provides shared pixel-level utilities for image analysis:
// grayscale conversion, gradient-based edge maps, and per-row statistics.
// Everything here is pure Go and allocation-conscious; callers hand the
// resulting flat masks around by index (y*width + x).
package imgutil

import (
	"image"
	"image/draw"
	"math"
)

// Luma returns the BT.601 luma of an 8-bit RGB triple.
func Luma(r, g, b uint8) uint8 {
	return uint8((19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16)
}

// GrayAt returns the BT.601 luma (0-255) of the pixel at (x, y).
func GrayAt(img image.Image, x, y int) int {
	r, g, b, _ := img.At(x, y).RGBA()
	return int((19595*r + 38470*g + 7471*b + 1<<15) >> 24)
}

// IsOpaque reports whether the image is known to be fully opaque.
// Images that do not expose an Opaque method are assumed opaque.
func IsOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return true
}

// ToNRGBA converts any image to NRGBA with bounds anchored at the origin.
// Returns the input unchanged when it already has that shape.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// ToGray converts an origin-anchored NRGBA image to 8-bit grayscale.
func ToGray(px *image.NRGBA) *image.Gray {
	w, h := px.Rect.Dx(), px.Rect.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := px.Pix[y*px.Stride : y*px.Stride+w*4]
		out := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		for x := 0; x < w; x++ {
			out[x] = Luma(row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return gray
}

// SobelMagnitudes computes the L1 Sobel gradient magnitude |gx|+|gy| for
// every pixel of gray, indexed y*width+x. Border pixels get magnitude 0.
// Values range 0..2040 for 8-bit input.
func SobelMagnitudes(gray *image.Gray) []int {
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	mags := make([]int, w*h)
	if w < 3 || h < 3 {
		return mags
	}
	at := func(x, y int) int { return int(gray.Pix[y*gray.Stride+x]) }
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			if gx < 0 {
				gx = -gx
			}
			if gy < 0 {
				gy = -gy
			}
			mags[y*w+x] = gx + gy
		}
	}
	return mags
}

// RowStats returns the mean and standard deviation of the gray values in
// row y, columns [x0, x1). Returns (0, 0) for an empty range.
func RowStats(gray *image.Gray, y, x0, x1 int) (mean, std float64) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > gray.Rect.Dx() {
		x1 = gray.Rect.Dx()
	}
	n := x1 - x0
	if n <= 0 || y < 0 || y >= gray.Rect.Dy() {
		return 0, 0
	}
	row := gray.Pix[y*gray.Stride+x0 : y*gray.Stride+x1]
	var sum, sumSq float64
	for _, v := range row {
		f := float64(v)
		sum += f
		sumSq += f * f
	}
	mean = sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}
