package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchHairExactIntersection(t *testing.T) {
	t.Parallel()

	m := NewMatcher(Default())

	// Medium curly styles: 15 candidates led by "Short Curls".
	assert.Equal(t, 2, m.MatchHair(VolumeMedium, TextureCurly, 0))
	assert.Equal(t, 28, m.MatchHair(VolumeMedium, TextureCurly, 1))
	assert.Equal(t, 28, m.MatchHair(VolumeMedium, TextureCurly, 16))
	assert.Equal(t, 94, m.MatchHair(VolumeMedium, TextureCurly, -1))

	// Bald heads: both entries reachable by seed.
	assert.Equal(t, 0, m.MatchHair(VolumeNone, TextureSmooth, 0))
	assert.Equal(t, 20, m.MatchHair(VolumeNone, TextureSmooth, 1))
	assert.Equal(t, 0, m.MatchHair(VolumeNone, TextureSmooth, 2))
}

func TestMatchHairDistinctiveTextureFallback(t *testing.T) {
	t.Parallel()

	m := NewMatcher(Default())

	// No very-high curly styles exist, so the match slides to the medium
	// curly set rather than abandoning the detected texture.
	assert.Equal(t, 2, m.MatchHair(VolumeVeryHigh, TextureCurly, 0))

	// Same for an afro detected with no hair volume: the medium afro set
	// answers, led by "Rounded Afro".
	assert.Equal(t, 10, m.MatchHair(VolumeNone, TextureAfro, 0))
	assert.Equal(t, 13, m.MatchHair(VolumeNone, TextureAfro, 1))
}

func TestMatchHairVolumeFallback(t *testing.T) {
	t.Parallel()

	m := NewMatcher(Default())

	// No very-high wavy styles exist and wavy is not a distinctive
	// texture, so the whole very-high set answers.
	assert.Equal(t, 27, m.MatchHair(VolumeVeryHigh, TextureWavy, 0))
	assert.Equal(t, 95, m.MatchHair(VolumeVeryHigh, TextureWavy, 3))
	assert.Equal(t, 82, m.MatchHair(VolumeVeryHigh, TextureWavy, 7))
}

func TestMatchHairStaticDefaults(t *testing.T) {
	t.Parallel()

	// A catalog with only medium smooth styles leaves most buckets empty.
	c := buildCatalog(t,
		[]string{"Medium Straight", "Medium Slicked Back", "Medium Shag"},
		[]string{"Clean Shaven"},
		[]string{"None"},
	)
	m := NewMatcher(c)

	assert.Equal(t, 0, m.MatchHair(VolumeHigh, TextureSmooth, 7))
	assert.Equal(t, 2, m.MatchHair(VolumeHigh, TextureCurly, 0), "curly default clamps to catalog max")
	assert.Equal(t, 2, m.MatchHair(VolumeHigh, TextureWavy, 0), "wavy default clamps to catalog max")
	assert.Equal(t, 2, m.MatchHair(VolumeVeryHigh, HairTexture(99), 0), "volume default clamps to catalog max")
}

func TestMatchFacialHair(t *testing.T) {
	t.Parallel()

	m := NewMatcher(Default())

	assert.Equal(t, 20, m.MatchFacialHair(DensityFullBeard, 0))
	assert.Equal(t, 22, m.MatchFacialHair(DensityFullBeard, 2))
	assert.Equal(t, 22, m.MatchFacialHair(DensityFullBeard, 7))
	assert.Equal(t, 0, m.MatchFacialHair(DensityNone, 0))
	assert.Equal(t, 16, m.MatchFacialHair(DensityNone, 1))
}

func TestMatchFacialHairEmptyBucket(t *testing.T) {
	t.Parallel()

	c := buildCatalog(t,
		[]string{"Bald"},
		[]string{"Full Beard"},
		[]string{"None"},
	)
	m := NewMatcher(c)
	assert.Equal(t, 0, m.MatchFacialHair(DensityStubble, 5))
}

func TestMatchAccessory(t *testing.T) {
	t.Parallel()

	m := NewMatcher(Default())

	assert.Equal(t, 6, m.MatchAccessory(AccessorySunglasses, 0))
	assert.Equal(t, 13, m.MatchAccessory(AccessorySunglasses, 2))
	assert.Equal(t, 7, m.MatchAccessory(AccessorySunglasses, 5))
	assert.Equal(t, 9, m.MatchAccessory(AccessoryThinWhiteBand, 4))
	assert.Equal(t, 0, m.MatchAccessory(AccessoryNone, 99))
}

func TestMatchAccessoryEmptyBucket(t *testing.T) {
	t.Parallel()

	c := buildCatalog(t,
		[]string{"Bald"},
		[]string{"Clean Shaven"},
		[]string{"Thick Red Headband"},
	)
	m := NewMatcher(c)
	assert.Equal(t, 0, m.MatchAccessory(AccessoryNone, 3))
}

// Every bucket combination must land inside the catalog's index range,
// whatever the seed.
func TestMatchHairAlwaysInRange(t *testing.T) {
	t.Parallel()

	m := NewMatcher(Default())
	seeds := []int{0, 1, 5, 17, 9999, -3}

	for _, v := range allVolumes {
		for _, x := range allTextures {
			for _, s := range seeds {
				got := m.MatchHair(v, x, s)
				assert.GreaterOrEqual(t, got, 0, "vol %s tex %s seed %d", v, x, s)
				assert.LessOrEqual(t, got, 130, "vol %s tex %s seed %d", v, x, s)
			}
		}
	}
	for _, d := range allDensity {
		got := m.MatchFacialHair(d, 41)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 24)
	}
	for _, k := range allKinds {
		got := m.MatchAccessory(k, 41)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 16)
	}
}

func TestMatchDeterministic(t *testing.T) {
	t.Parallel()

	m := NewMatcher(Default())
	for _, v := range allVolumes {
		for _, x := range allTextures {
			first := m.MatchHair(v, x, 1234)
			assert.Equal(t, first, m.MatchHair(v, x, 1234))
		}
	}
}

// Concurrent first use of a fresh catalog must build the index exactly once
// and give every caller the same answers.
func TestMatchConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	c := buildCatalog(t,
		[]string{"Bald", "Tight Buzzcut", "Short Curls", "Rounded Afro"},
		[]string{"Clean Shaven", "Full Beard"},
		[]string{"None", "Thin Black Athletic Headband"},
	)
	m := NewMatcher(c)

	const callers = 16
	got := make([]int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = m.MatchHair(VolumeMedium, TextureCurly, 5)
		}(i)
	}
	wg.Wait()

	require.NotEmpty(t, got)
	for _, g := range got[1:] {
		assert.Equal(t, got[0], g)
	}
}
