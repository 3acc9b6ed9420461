package catalog

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCatalog assembles a valid catalog document from three description
// lists and parses it. Indices are assigned in list order.
func buildCatalog(t *testing.T, hair, facial, accessories []string) *Catalog {
	t.Helper()

	entries := func(descs []string) []Entry {
		es := make([]Entry, len(descs))
		for i, d := range descs {
			es[i] = Entry{Index: i, Description: d}
		}
		return es
	}
	doc := map[string]any{
		"meta": map[string]any{
			"total_styles": len(hair) + len(facial) + len(accessories),
		},
		"mappings": map[string]any{
			"hair":        entries(hair),
			"facial_hair": entries(facial),
			"accessories": entries(accessories),
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	return c
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, 173, c.TotalStyles)
	assert.Len(t, c.Hair, 131)
	assert.Len(t, c.FacialHair, 25)
	assert.Len(t, c.Accessories, 17)

	assert.Equal(t, "Bald/Shaved Head", c.Hair[0].Description)
	assert.Equal(t, "Clean Shaven", c.FacialHair[0].Description)
	assert.Equal(t, "None", c.Accessories[0].Description)

	assert.Same(t, c, Default())
}

func TestParseSortsEntries(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"meta": {"total_styles": 5},
		"mappings": {
			"hair": [
				{"index": 2, "description": "Short Curls"},
				{"index": 0, "description": "Bald"},
				{"index": 1, "description": "Buzzcut"}
			],
			"facial_hair": [{"index": 0, "description": "Clean Shaven"}],
			"accessories": [{"index": 0, "description": "None"}]
		}
	}`)
	c, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, c.Hair, 3)
	assert.Equal(t, "Bald", c.Hair[0].Description)
	assert.Equal(t, "Buzzcut", c.Hair[1].Description)
	assert.Equal(t, "Short Curls", c.Hair[2].Description)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
	}{
		{"malformed json", `{"meta": {`},
		{"empty category", `{
			"meta": {"total_styles": 2},
			"mappings": {
				"hair": [{"index": 0, "description": "Bald"}],
				"facial_hair": [],
				"accessories": [{"index": 0, "description": "None"}]
			}
		}`},
		{"index gap", `{
			"meta": {"total_styles": 4},
			"mappings": {
				"hair": [
					{"index": 0, "description": "Bald"},
					{"index": 2, "description": "Short Curls"}
				],
				"facial_hair": [{"index": 0, "description": "Clean Shaven"}],
				"accessories": [{"index": 0, "description": "None"}]
			}
		}`},
		{"duplicate index", `{
			"meta": {"total_styles": 4},
			"mappings": {
				"hair": [
					{"index": 0, "description": "Bald"},
					{"index": 0, "description": "Buzzcut"}
				],
				"facial_hair": [{"index": 0, "description": "Clean Shaven"}],
				"accessories": [{"index": 0, "description": "None"}]
			}
		}`},
		{"total mismatch", `{
			"meta": {"total_styles": 99},
			"mappings": {
				"hair": [{"index": 0, "description": "Bald"}],
				"facial_hair": [{"index": 0, "description": "Clean Shaven"}],
				"accessories": [{"index": 0, "description": "None"}]
			}
		}`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(c.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestIndexBuiltOnce(t *testing.T) {
	t.Parallel()

	c := buildCatalog(t,
		[]string{"Bald", "Short Curls"},
		[]string{"Clean Shaven"},
		[]string{"None"},
	)

	const callers = 16
	results := make([]*Index, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Index()
		}(i)
	}
	wg.Wait()

	first := results[0]
	require.NotNil(t, first)
	for _, r := range results[1:] {
		assert.Same(t, first, r)
	}
}
