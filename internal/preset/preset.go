package preset

import "strings"

// Preset is a catalog entry describing a kind of map feature.
type Preset struct {
	ID       string   `toml:"id"`
	Label    string   `toml:"name"`
	Icon     string   `toml:"icon"`
	Geometry []string `toml:"geometry"`
	Terms    []string `toml:"terms"`
}

// Name returns the display name of the preset.
func (p *Preset) Name() string {
	if p == nil {
		return ""
	}
	return p.Label
}

// NameKey is the translation key of the preset's localized name.
func (p *Preset) NameKey() string {
	return "presets.presets." + p.ID + ".name"
}

// Supports reports whether the preset may be drawn as geometry g.
func (p *Preset) Supports(g string) bool {
	for _, have := range p.Geometry {
		if have == g {
			return true
		}
	}
	return false
}

// IsMaki reports whether the preset's icon belongs to the maki family.
func (p *Preset) IsMaki() bool {
	return strings.HasPrefix(p.Icon, "maki-")
}

// Favorite is one entry of the user's favorite preset list: a preset id
// paired with the geometry it is added as.
type Favorite struct {
	PresetID string `json:"id"`
	Geom     string `json:"geom"`
}
