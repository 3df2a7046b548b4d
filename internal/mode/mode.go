package mode

import (
	"fmt"
	"strings"

	"modebar/internal/preset"
)

// Well-known mode ids.
const (
	IDBrowse   = "browse"
	IDSelect   = "select"
	IDSave     = "save"
	IDAddPoint = "add-point"
	IDAddLine  = "add-line"
	IDAddArea  = "add-area"
	IDAddNote  = "add-note"
	IDDrawLine = "draw-line"
	IDDrawArea = "draw-area"
)

// drawPrefix marks modes that are in the middle of drawing a feature.
const drawPrefix = "draw"

// Kind identifies which constructor built a Mode.
type Kind int

const (
	KindBrowse Kind = iota
	KindSelect
	KindAddPoint
	KindAddLine
	KindAddArea
	KindAddNote
	KindDrawLine
	KindDrawArea
	KindSave
)

func (k Kind) String() string {
	switch k {
	case KindBrowse:
		return "browse"
	case KindSelect:
		return "select"
	case KindAddPoint:
		return "add-point"
	case KindAddLine:
		return "add-line"
	case KindAddArea:
		return "add-area"
	case KindAddNote:
		return "add-note"
	case KindDrawLine:
		return "draw-line"
	case KindDrawArea:
		return "draw-area"
	case KindSave:
		return "save"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Translator resolves localized strings. Missing keys must not fail.
type Translator interface {
	T(key string, vars map[string]string) string
}

// Mode is an interaction mode the editor can enter. Values are immutable
// once constructed; copy and modify to derive a variant.
type Mode struct {
	ID          string
	Button      string
	Title       string
	Description string
	Key         string
	Icon        string

	// Preset and Geometry are set for favorite-backed add modes.
	Preset   *preset.Preset
	Geometry Geometry

	Kind Kind
}

// IsZero reports whether m is the zero Mode (no mode entered).
func (m Mode) IsZero() bool { return m.ID == "" }

// Validate checks the construction invariants of m.
func (m Mode) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("mode has empty id")
	}
	if m.Preset != nil && m.Geometry == GeometryNone {
		return fmt.Errorf("mode %q: preset without geometry", m.ID)
	}
	if m.Preset == nil && m.Icon == "" && m.Button == "" {
		return fmt.Errorf("mode %q: neither icon nor preset set", m.ID)
	}
	return nil
}

// IsDrawing reports whether id names a mode that is mid-drawing. Mode button
// clicks are ignored while such a mode is active.
func IsDrawing(id string) bool {
	return strings.HasPrefix(id, drawPrefix)
}
