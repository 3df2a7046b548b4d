package preset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed data/presets.toml
var bundled []byte

// Catalog is an immutable, id-indexed set of presets.
type Catalog struct {
	presets []*Preset
	byID    map[string]*Preset
}

type catalogFile struct {
	Preset []*Preset `toml:"preset"`
}

// Load decodes a TOML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode preset catalog: %w", err)
	}
	return New(f.Preset...)
}

// Default returns the bundled catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(bundled))
}

// New builds a catalog from presets. Ids must be unique and non-empty.
func New(presets ...*Preset) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Preset, len(presets))}
	for _, p := range presets {
		if p == nil || p.ID == "" {
			return nil, fmt.Errorf("preset with empty id")
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		c.byID[p.ID] = p
		c.presets = append(c.presets, p)
	}
	return c, nil
}

// Lookup returns the preset with the given id.
func (c *Catalog) Lookup(id string) (*Preset, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.byID[id]
	return p, ok
}

// All returns presets sorted by display name.
func (c *Catalog) All() []*Preset {
	out := append([]*Preset(nil), c.presets...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func (c *Catalog) Len() int { return len(c.presets) }
