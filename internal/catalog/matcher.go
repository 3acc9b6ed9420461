package catalog

// Matcher resolves classified buckets to concrete catalog indices. It is a
// pure, terminating decision procedure: every call returns a valid in-range
// index for the catalog it was built over, whatever the bucket combination.
//
// Selection among tied candidates uses a variety seed, a deterministic
// feature magnitude supplied by the caller (raw hair-pixel count for hair,
// chin-skin-pixel count for facial hair, band height or dark-row count for
// accessories). The pick is sorted[seed mod len], so identical inputs always
// resolve identically while visually different inputs spread across the
// candidate set.
type Matcher struct {
	cat *Catalog
}

// NewMatcher returns a Matcher over c. The catalog's bucket index is built
// lazily on the first match.
func NewMatcher(c *Catalog) *Matcher {
	return &Matcher{cat: c}
}

// distinctiveTextures are matched texture-first when the exact
// volume-texture intersection is empty: a detected afro or dreads says more
// about the right catalog entry than the volume estimate does.
var distinctiveTextures = map[HairTexture]bool{
	TextureAfro:   true,
	TextureDreads: true,
	TextureCurly:  true,
}

// texturePriorityVolumes is the volume fallback order tried for distinctive
// textures, after the detected volume itself.
var texturePriorityVolumes = []HairVolume{VolumeMedium, VolumeLow, VolumeHigh}

// hairTextureDefaults and hairVolumeDefaults anchor the final fallback tier
// to well-known entries of the default catalog.
var hairTextureDefaults = map[HairTexture]int{
	TextureSmooth: 0,
	TextureWavy:   18,
	TextureCurly:  2,
	TextureAfro:   10,
	TextureDreads: 19,
}

var hairVolumeDefaults = map[HairVolume]int{
	VolumeNone:     0,
	VolumeLow:      1,
	VolumeMedium:   2,
	VolumeHigh:     17,
	VolumeVeryHigh: 82,
}

// MatchHair resolves a volume and texture pair to a hair index.
//
// The chain, in priority order:
//  1. volume ∩ texture, seeded pick.
//  2. For distinctive textures only: texture ∩ v for v in
//     [detected, medium, low, high], first non-empty, seeded pick;
//     then the whole texture set, seeded pick.
//  3. The whole volume set, seeded pick.
//  4. Static per-texture default, then static per-volume default.
func (m *Matcher) MatchHair(vol HairVolume, tex HairTexture, seed int) int {
	idx := m.cat.Index()

	volSet := idx.HairByVolume(vol)
	texSet := idx.HairByTexture(tex)

	if both := intersect(volSet, texSet); len(both) > 0 {
		return pick(both, seed)
	}

	if distinctiveTextures[tex] && len(texSet) > 0 {
		tried := []HairVolume{vol}
		tried = append(tried, texturePriorityVolumes...)
		for _, v := range tried {
			if s := intersect(texSet, idx.HairByVolume(v)); len(s) > 0 {
				return pick(s, seed)
			}
		}
		return pick(texSet, seed)
	}

	if len(volSet) > 0 {
		return pick(volSet, seed)
	}

	if d, ok := hairTextureDefaults[tex]; ok {
		return clampIndex(d, idx.MaxHair())
	}
	return clampIndex(hairVolumeDefaults[vol], idx.MaxHair())
}

// MatchFacialHair resolves a density bucket to a facial-hair index:
// density set (seeded pick), else index 0.
func (m *Matcher) MatchFacialHair(d FacialHairDensity, seed int) int {
	idx := m.cat.Index()
	if s := idx.FacialHairByDensity(d); len(s) > 0 {
		return pick(s, seed)
	}
	return 0
}

// MatchAccessory resolves an accessory kind to an accessory index:
// kind set (seeded pick), else index 0.
func (m *Matcher) MatchAccessory(k AccessoryKind, seed int) int {
	idx := m.cat.Index()
	if s := idx.AccessoriesByKind(k); len(s) > 0 {
		return pick(s, seed)
	}
	return 0
}

// pick selects candidates[seed mod len]. Candidates are ascending, so the
// selection is stable for a given catalog and seed.
func pick(candidates []int, seed int) int {
	n := len(candidates)
	i := seed % n
	if i < 0 {
		i += n
	}
	return candidates[i]
}

// intersect returns the values present in both ascending slices, ascending.
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// clampIndex bounds a static default to the loaded catalog's index range,
// keeping the bounds invariant for catalogs smaller than the default one.
func clampIndex(i, maxIdx int) int {
	if i > maxIdx {
		return maxIdx
	}
	if i < 0 {
		return 0
	}
	return i
}
