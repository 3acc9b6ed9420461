// Package asset indexes sprite sheets of catalog art. Each sheet is split
// into a grid, every occupied cell is measured (coverage, average color,
// center of mass, perceptual hash), and the cells are emitted as a JSON
// index whose per-category ordering lines up with catalog indices. The
// measurements back art audits: palette extraction, nearest-color lookup
// and perceptual dedupe.
package asset

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/corona10/goimagehash"
	"go.uber.org/zap"

	"hoopvision/internal/imgio"
	"hoopvision/pkg/imgutil"
)

// DefaultCols is the column count catalog sheets ship with.
const DefaultCols = 11

// keyTolerance is the per-channel ceiling for strict-black color keying on
// sheets exported without an alpha channel. Nonzero to absorb compression
// artifacts.
const keyTolerance = 12

// Categories are the sheet families scanned by IndexDir, matching the
// <category>-<n>.png naming of the art drops.
var Categories = []string{"hair", "facial-hair", "accessory"}

// CellFeature describes one occupied grid cell of a sprite sheet. Index is
// the cell's running position across its category, in sorted-file then
// reading order, so it lines up with the catalog index of the same art.
// CenterX and CenterY are the foreground's center of mass relative to the
// cell center, positive right and down.
type CellFeature struct {
	File      string   `json:"file"`
	Index     int      `json:"index"`
	Col       int      `json:"col"`
	Row       int      `json:"row"`
	AvgColor  [3]uint8 `json:"avg_color"`
	Luminance float64  `json:"luminance"`
	Volume    float64  `json:"volume"`
	CenterX   float64  `json:"center_x"`
	CenterY   float64  `json:"center_y"`
	Hash      string   `json:"phash"`
}

// PerceptualHash rebuilds the cell's difference hash for distance math.
func (c CellFeature) PerceptualHash() (*goimagehash.ImageHash, error) {
	v, err := strconv.ParseUint(c.Hash, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("parse phash %q: %w", c.Hash, err)
	}
	return goimagehash.NewImageHash(v, goimagehash.DHash), nil
}

// Indexer splits sprite sheets into grid cells and measures each one.
// Indexers are safe for concurrent use.
type Indexer struct {
	cols int
	log  *zap.Logger
}

// NewIndexer returns an indexer using the standard column layout, with
// logging off until WithLogger overrides it.
func NewIndexer() *Indexer {
	return &Indexer{cols: DefaultCols, log: zap.NewNop()}
}

// WithCols returns a copy of the indexer splitting sheets into cols
// columns. Non-positive values keep the current layout.
func (ix Indexer) WithCols(cols int) *Indexer {
	if cols > 0 {
		ix.cols = cols
	}
	return &ix
}

// WithLogger returns a copy of the indexer logging through log.
func (ix Indexer) WithLogger(log *zap.Logger) *Indexer {
	ix.log = log
	return &ix
}

// IndexImage measures every occupied cell of one sheet. Cell indices are
// file-local reading order; IndexDir rewrites them into category order.
func (ix *Indexer) IndexImage(img image.Image, fileName string) []CellFeature {
	px := imgutil.ToNRGBA(img)
	w, h := px.Rect.Dx(), px.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	mask := foregroundMask(px, imgutil.IsOpaque(img))
	rows := detectRows(mask, w, h)
	cellW, cellH := w/ix.cols, h/rows
	if cellW == 0 || cellH == 0 {
		return nil
	}
	ix.log.Debug("sheet grid",
		zap.String("file", fileName),
		zap.Int("cols", ix.cols),
		zap.Int("rows", rows),
		zap.Int("cell_w", cellW),
		zap.Int("cell_h", cellH),
	)

	var out []CellFeature
	for row := 0; row < rows; row++ {
		for col := 0; col < ix.cols; col++ {
			f, ok := measureCell(px, mask, w, col, row, cellW, cellH)
			if !ok {
				continue
			}
			f.File = fileName
			f.Index = len(out)
			out = append(out, f)
		}
	}
	return out
}

// IndexFile reads, decodes and indexes one sheet from disk.
func (ix *Indexer) IndexFile(path string) ([]CellFeature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	img, err := imgio.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", filepath.Base(path), err)
	}
	return ix.IndexImage(img, filepath.Base(path)), nil
}

// IndexDir scans dir for category sheets and indexes each category with
// one global running index across its sheets, in sorted filename order.
// Categories without sheets come back empty rather than failing, so art
// drops can land one family at a time.
func (ix *Indexer) IndexDir(dir string) (map[string][]CellFeature, error) {
	out := make(map[string][]CellFeature, len(Categories))
	for _, cat := range Categories {
		files, err := filepath.Glob(filepath.Join(dir, cat+"-*.png"))
		if err != nil {
			return nil, fmt.Errorf("scan %s sheets: %w", cat, err)
		}
		sort.Strings(files)

		cells := []CellFeature{}
		for _, f := range files {
			feats, err := ix.IndexFile(f)
			if err != nil {
				return nil, err
			}
			for _, ft := range feats {
				ft.Index = len(cells)
				cells = append(cells, ft)
			}
		}
		ix.log.Info("category indexed",
			zap.String("category", cat),
			zap.Int("sheets", len(files)),
			zap.Int("cells", len(cells)),
		)
		out[cat] = cells
	}
	return out, nil
}

// WriteIndex emits a category index as indented JSON. Object keys are
// sorted, so identical indexes serialize byte-identically.
func WriteIndex(w io.Writer, index map[string][]CellFeature) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		return fmt.Errorf("encode asset index: %w", err)
	}
	return nil
}

// foregroundMask marks sprite pixels, by alpha when the sheet carries any
// transparency and by strict-black keying otherwise.
func foregroundMask(px *image.NRGBA, opaque bool) []bool {
	w, h := px.Rect.Dx(), px.Rect.Dy()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		row := px.Pix[y*px.Stride : y*px.Stride+w*4]
		for x := 0; x < w; x++ {
			r, g, b, a := row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
			if opaque {
				mask[y*w+x] = r > keyTolerance || g > keyTolerance || b > keyTolerance
			} else {
				mask[y*w+x] = a > 0
			}
		}
	}
	return mask
}

// detectRows counts occupied row bands in the mask's row projection. A
// sheet that reads as a single solid band falls back to the two-row layout
// catalog art ships in.
func detectRows(mask []bool, w, h int) int {
	rows := 0
	inBand := false
	for y := 0; y < h; y++ {
		occupied := false
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				occupied = true
				break
			}
		}
		if occupied && !inBand {
			rows++
		}
		inBand = occupied
	}
	if rows <= 1 {
		rows = 2
	}
	return rows
}

// measureCell aggregates the foreground pixels of one grid cell. The
// second return is false for cells with no foreground at all.
func measureCell(px *image.NRGBA, mask []bool, imgW, col, row, cellW, cellH int) (CellFeature, bool) {
	x0, y0 := col*cellW, row*cellH

	var count int
	var sumR, sumG, sumB, sumX, sumY float64
	for y := 0; y < cellH; y++ {
		moff := (y0 + y) * imgW
		poff := (y0+y)*px.Stride + x0*4
		for x := 0; x < cellW; x++ {
			if !mask[moff+x0+x] {
				continue
			}
			o := poff + x*4
			sumR += float64(px.Pix[o])
			sumG += float64(px.Pix[o+1])
			sumB += float64(px.Pix[o+2])
			sumX += float64(x)
			sumY += float64(y)
			count++
		}
	}
	if count == 0 {
		return CellFeature{}, false
	}

	n := float64(count)
	avgR, avgG, avgB := sumR/n, sumG/n, sumB/n

	hash := ""
	cell := px.SubImage(image.Rect(x0, y0, x0+cellW, y0+cellH))
	if h, err := goimagehash.DifferenceHash(cell); err == nil {
		hash = fmt.Sprintf("%016x", h.GetHash())
	}

	return CellFeature{
		Col:       col,
		Row:       row,
		AvgColor:  [3]uint8{uint8(avgR + 0.5), uint8(avgG + 0.5), uint8(avgB + 0.5)},
		Luminance: 0.299*avgR + 0.587*avgG + 0.114*avgB,
		Volume:    n / float64(cellW*cellH),
		CenterX:   sumX/n - float64(cellW-1)/2,
		CenterY:   sumY/n - float64(cellH-1)/2,
		Hash:      hash,
	}, true
}
