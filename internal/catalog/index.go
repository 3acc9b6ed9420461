package catalog

// Index groups catalog entry indices by the buckets their descriptions
// imply. Read-only after construction; the slices it returns are shared and
// must not be mutated by callers.
type Index struct {
	hairByVolume  map[HairVolume][]int
	hairByTexture map[HairTexture][]int
	hairByLength  map[HairLength][]int
	byDensity     map[FacialHairDensity][]int
	byAccessory   map[AccessoryKind][]int

	maxHair       int
	maxFacialHair int
	maxAccessory  int
}

// buildIndex scans every category once. Entries are already sorted by
// index, so each bucket slice comes out ascending.
func buildIndex(c *Catalog) *Index {
	idx := &Index{
		hairByVolume:  make(map[HairVolume][]int),
		hairByTexture: make(map[HairTexture][]int),
		hairByLength:  make(map[HairLength][]int),
		byDensity:     make(map[FacialHairDensity][]int),
		byAccessory:   make(map[AccessoryKind][]int),
		maxHair:       len(c.Hair) - 1,
		maxFacialHair: len(c.FacialHair) - 1,
		maxAccessory:  len(c.Accessories) - 1,
	}
	for _, e := range c.Hair {
		v := ClassifyVolume(e.Description)
		t := ClassifyTexture(e.Description)
		l := ClassifyLength(e.Description)
		idx.hairByVolume[v] = append(idx.hairByVolume[v], e.Index)
		idx.hairByTexture[t] = append(idx.hairByTexture[t], e.Index)
		idx.hairByLength[l] = append(idx.hairByLength[l], e.Index)
	}
	for _, e := range c.FacialHair {
		d := ClassifyDensity(e.Description)
		idx.byDensity[d] = append(idx.byDensity[d], e.Index)
	}
	for _, e := range c.Accessories {
		k := ClassifyAccessory(e.Description)
		idx.byAccessory[k] = append(idx.byAccessory[k], e.Index)
	}
	return idx
}

// HairByVolume returns the hair indices classified into volume v.
func (idx *Index) HairByVolume(v HairVolume) []int { return idx.hairByVolume[v] }

// HairByTexture returns the hair indices classified into texture t.
func (idx *Index) HairByTexture(t HairTexture) []int { return idx.hairByTexture[t] }

// HairByLength returns the hair indices classified into length l.
func (idx *Index) HairByLength(l HairLength) []int { return idx.hairByLength[l] }

// FacialHairByDensity returns the facial-hair indices classified into d.
func (idx *Index) FacialHairByDensity(d FacialHairDensity) []int { return idx.byDensity[d] }

// AccessoriesByKind returns the accessory indices classified into k.
func (idx *Index) AccessoriesByKind(k AccessoryKind) []int { return idx.byAccessory[k] }

// MaxHair returns the highest valid hair index.
func (idx *Index) MaxHair() int { return idx.maxHair }

// MaxFacialHair returns the highest valid facial-hair index.
func (idx *Index) MaxFacialHair() int { return idx.maxFacialHair }

// MaxAccessory returns the highest valid accessory index.
func (idx *Index) MaxAccessory() int { return idx.maxAccessory }
