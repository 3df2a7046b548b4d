package preset

import "strings"

// glyphs maps icon names (without '#' and size suffix) onto terminal glyphs.
var glyphs = map[string]string{
	"iD-icon-point":          "●",
	"iD-icon-line":           "╱",
	"iD-icon-area":           "▰",
	"iD-icon-note":           "✎",
	"iD-highway-residential": "═",
	"iD-highway-footway":     "┄",
	"iD-waterway-stream":     "≈",
	"maki-cafe":              "☕",
	"maki-drinking-water":    "⛲",
	"maki-park":              "♣",
	"maki-roadblock":         "▤",
	"maki-building":          "⌂",
	"maki-garden":            "❀",
	"temaki-bench":           "⑁",
}

var geometryGlyphs = map[string]string{
	"point":  "●",
	"vertex": "◆",
	"line":   "─",
	"area":   "▭",
}

const unknownGlyph = "□"

// Icons renders icon references as terminal glyphs.
type Icons struct{}

// Icon renders a reference such as "#maki-cafe-11" or "#iD-icon-point".
func (Icons) Icon(ref string) string {
	if g, ok := glyphs[iconName(ref)]; ok {
		return g
	}
	return unknownGlyph
}

// PresetIcon renders a preset as drawn with geometry. The "small" size is
// the bare glyph; larger sizes frame it by geometry.
func (Icons) PresetIcon(p *Preset, geometry, size string) string {
	g, ok := "", false
	if p != nil {
		g, ok = glyphs[p.Icon]
	}
	if !ok {
		g, ok = geometryGlyphs[geometry]
		if !ok {
			g = unknownGlyph
		}
	}
	if size == "small" {
		return g
	}
	switch geometry {
	case "point":
		return "(" + g + ")"
	case "vertex":
		return "<" + g + ">"
	case "line":
		return "─" + g + "─"
	case "area":
		return "[" + g + "]"
	}
	return g
}

// iconName strips the "#" sigil and a trailing numeric size suffix.
func iconName(ref string) string {
	name := strings.TrimPrefix(ref, "#")
	if i := strings.LastIndex(name, "-"); i > 0 {
		suffix := name[i+1:]
		if suffix != "" && strings.Trim(suffix, "0123456789") == "" {
			name = name[:i]
		}
	}
	return name
}
