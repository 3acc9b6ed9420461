// Package imgio turns headshot bytes into pixel grids. It decodes the
// common web image formats, honors EXIF orientation, and fetches source
// bytes over HTTP with a stealth-then-fallback client strategy.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/bep/imagemeta"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/webp"
)

// Decode decodes image bytes into a pixel grid. JPEG, PNG, GIF, WebP and
// BMP are recognized. If the bytes carry an EXIF orientation, the returned
// image is already rotated/flipped upright.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if o := orientation(data); o > 1 {
		img = applyOrientation(img, o)
	}
	return img, nil
}

// orientation reads the EXIF orientation tag, if any. Returns 1 (upright)
// when the bytes carry no usable metadata.
func orientation(data []byte) int {
	o := 1
	_, err := imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			return ti.Tag == "Orientation"
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			switch v := ti.Value.(type) {
			case uint16:
				o = int(v)
			case uint32:
				o = int(v)
			case int:
				o = v
			}
			return nil
		},
	})
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// applyOrientation maps the eight EXIF orientation cases onto affine
// transforms. Orientations 5-8 swap width and height.
func applyOrientation(img image.Image, o int) image.Image {
	b := img.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	var m f64.Aff3
	swap := false
	switch o {
	case 2: // mirror horizontal
		m = f64.Aff3{-1, 0, w, 0, 1, 0}
	case 3: // rotate 180
		m = f64.Aff3{-1, 0, w, 0, -1, h}
	case 4: // mirror vertical
		m = f64.Aff3{1, 0, 0, 0, -1, h}
	case 5: // mirror horizontal then rotate 270 CW
		m = f64.Aff3{0, 1, 0, 1, 0, 0}
		swap = true
	case 6: // rotate 90 CW
		m = f64.Aff3{0, -1, h, 1, 0, 0}
		swap = true
	case 7: // mirror horizontal then rotate 90 CW
		m = f64.Aff3{0, -1, h, -1, 0, w}
		swap = true
	case 8: // rotate 270 CW
		m = f64.Aff3{0, 1, 0, -1, 0, w}
		swap = true
	default:
		return img
	}

	dw, dh := b.Dx(), b.Dy()
	if swap {
		dw, dh = dh, dw
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.NearestNeighbor.Transform(dst, m, img, b, xdraw.Src, nil)
	return dst
}
