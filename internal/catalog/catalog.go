// Package catalog loads the externally authored style catalog and resolves
// classified appearance buckets to concrete catalog indices.
//
// A catalog is a JSON document of three categories (hair, facial hair,
// accessories), each a gapless list of {index, description} entries. The
// descriptions carry the classification vocabulary: a derived Index groups
// entry indices by the buckets their descriptions imply, and a Matcher walks
// a tiered fallback chain over those groups so every bucket combination
// resolves to a valid in-range index.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

//go:embed data/mappings.json
var defaultMappings []byte

// Entry is one authored catalog style.
type Entry struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
}

// Catalog holds the three style categories. Immutable after load; the
// derived Index is built lazily on first use and shared by all callers.
type Catalog struct {
	TotalStyles int
	Hair        []Entry
	FacialHair  []Entry
	Accessories []Entry

	once sync.Once
	idx  *Index
}

// catalogFile mirrors the JSON document shape.
type catalogFile struct {
	Meta struct {
		TotalStyles int `json:"total_styles"`
	} `json:"meta"`
	Mappings struct {
		Hair        []Entry `json:"hair"`
		FacialHair  []Entry `json:"facial_hair"`
		Accessories []Entry `json:"accessories"`
	} `json:"mappings"`
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		TotalStyles: f.Meta.TotalStyles,
		Hair:        f.Mappings.Hair,
		FacialHair:  f.Mappings.FacialHair,
		Accessories: f.Mappings.Accessories,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads and parses a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// validate checks that every category is non-empty and gapless from 0 and
// that the declared total matches the entry count.
func (c *Catalog) validate() error {
	total := 0
	for _, cat := range []struct {
		name    string
		entries []Entry
	}{
		{"hair", c.Hair},
		{"facial_hair", c.FacialHair},
		{"accessories", c.Accessories},
	} {
		if len(cat.entries) == 0 {
			return fmt.Errorf("catalog category %s is empty", cat.name)
		}
		sort.Slice(cat.entries, func(i, j int) bool {
			return cat.entries[i].Index < cat.entries[j].Index
		})
		for i, e := range cat.entries {
			if e.Index != i {
				return fmt.Errorf("catalog category %s: want index %d, got %d (indices must be gapless from 0)",
					cat.name, i, e.Index)
			}
		}
		total += len(cat.entries)
	}
	if c.TotalStyles != total {
		return fmt.Errorf("catalog meta.total_styles is %d but categories hold %d entries", c.TotalStyles, total)
	}
	return nil
}

// Index returns the derived bucket index, building it on first use.
// Safe for concurrent callers; all observe the same immutable result.
func (c *Catalog) Index() *Index {
	c.once.Do(func() {
		c.idx = buildIndex(c)
	})
	return c.idx
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. The embedded document is validated
// at first use; it cannot fail for a released binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultMappings)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
