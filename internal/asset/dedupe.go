package asset

import "github.com/corona10/goimagehash"

// DedupeThreshold is the maximum Hamming distance between two difference
// hashes below which cells count as the same art.
const DedupeThreshold = 10

// Dedupe returns cells with perceptual duplicates removed, keeping the
// first occurrence of each look. Cells without a usable hash are kept;
// a failed hash must not drop real art.
func Dedupe(cells []CellFeature) []CellFeature {
	kept := make([]CellFeature, 0, len(cells))
	seen := make([]*goimagehash.ImageHash, 0, len(cells))

	for _, c := range cells {
		h, err := c.PerceptualHash()
		if err != nil {
			kept = append(kept, c)
			continue
		}
		dup := false
		for _, s := range seen {
			if d, err := h.Distance(s); err == nil && d < DedupeThreshold {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen = append(seen, h)
		kept = append(kept, c)
	}
	return kept
}
