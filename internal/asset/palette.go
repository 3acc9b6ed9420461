package asset

import (
	"image"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// paletteMaxSamples caps the pixels fed to k-means so large sheets stay
// tractable.
const paletteMaxSamples = 12000

// DominantColor returns the strongest color of a sprite region.
func DominantColor(img image.Image) colorful.Color {
	c, ok := colorful.MakeColor(dominantcolor.Find(img))
	if !ok {
		return colorful.Color{}
	}
	return c.Clamped()
}

// KMeansPalette clusters a sprite's opaque pixels into up to k
// representative colors, most populous cluster first. Fully transparent
// regions yield nil.
func KMeansPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	step := 1
	if w*h > paletteMaxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(paletteMaxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(w*h, paletteMaxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(bl) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		return nil
	}
	sort.SliceStable(cc, func(i, j int) bool {
		return len(cc[i].Observations) > len(cc[j].Observations)
	})

	out := make([]colorful.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		out = append(out, colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped())
	}
	return out
}
