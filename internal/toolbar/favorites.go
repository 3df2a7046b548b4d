package toolbar

import (
	"log/slog"
	"regexp"

	"modebar/internal/mode"
	"modebar/internal/preset"
)

// RE2's \s is ASCII only; names may carry no-break and ideographic spaces.
var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}\x{FEFF}]+`)

// primaryGeometries are the geometries a user picks between when adding a
// preset; vertex is a point on a line and does not count.
var primaryGeometries = []string{"point", "line", "area"}

// DeriveFavoriteModes turns the favorite preset list into add modes, in
// list order. Entries whose preset is no longer in the catalog, or whose
// geometry no add mode can draw, are skipped.
func DeriveFavoriteModes(favs []preset.Favorite, cat Catalog, tr Translator, logger *slog.Logger) []mode.Mode {
	out := make([]mode.Mode, 0, len(favs))
	for _, f := range favs {
		m, ok := deriveFavoriteMode(f, cat, tr)
		if !ok {
			if logger != nil {
				logger.Debug("skip favorite", "preset", f.PresetID, "geom", f.Geom)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

func deriveFavoriteMode(f preset.Favorite, cat Catalog, tr Translator) (mode.Mode, bool) {
	p, ok := cat.Lookup(f.PresetID)
	if !ok {
		return mode.Mode{}, false
	}
	geom, ok := mode.ParseGeometry(f.Geom)
	if !ok {
		return mode.Mode{}, false
	}
	construct := mode.ConstructorFor(geom)
	if construct == nil {
		return mode.Mode{}, false
	}

	icon := "#" + p.Icon
	if p.IsMaki() {
		icon += "-11"
	}

	// Spaces in the name would split the class list, so collapse them.
	markerClass := "add-preset add-" + f.Geom +
		" add-preset-" + whitespaceRun.ReplaceAllString(p.Name(), "_") + "-" + f.Geom

	name := tr.T(p.NameKey(), nil)
	return construct(tr, &mode.Mode{
		ID:          markerClass,
		Button:      markerClass,
		Title:       name,
		Description: tr.T(tooltipTitleKey(p, f.Geom), map[string]string{"feature": name}),
		Key:         "",
		Icon:        icon,
		Preset:      p,
		Geometry:    geom,
	}), true
}

// tooltipTitleKey picks the generic "Add X." phrasing when the preset can
// only be added one way, and the geometry-specific phrasing otherwise.
func tooltipTitleKey(p *preset.Preset, geom string) string {
	relevant := 0
	for _, g := range p.Geometry {
		for _, want := range primaryGeometries {
			if g == want {
				relevant++
			}
		}
	}
	if relevant == 1 {
		return "modes.add_preset.title"
	}
	return "modes.add_preset." + geom + ".title"
}
