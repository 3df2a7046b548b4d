// Package toolbar keeps the row of mode buttons in step with the editor.
//
// A Coordinator listens to editor lifecycle and viewport events, builds the
// desired list of modes (built-ins plus favorite presets), and hands it to a
// Reconciler which diffs it against the rendered buttons by mode id. Model
// wraps both as a bubbletea component.
package toolbar

import (
	"modebar/internal/mode"
	"modebar/internal/preset"
)

// State is the read-only editor state the toolbar evaluates against.
type State interface {
	CurrentMode() mode.Mode
	IsDataEditable() bool
	MapNotesEditable() bool
	NotesLayerEnabled() bool
}

// Editor is the host editor as seen by the toolbar.
type Editor interface {
	State
	Enter(m mode.Mode)
	Favorites() []preset.Favorite
}

// Events is the host's event subscription surface. Each subscription
// returns a function that cancels it.
type Events interface {
	OnEnter(fn func(mode.Mode)) func()
	OnExit(fn func(mode.Mode)) func()
	OnMove(fn func()) func()
	OnDrawn(fn func()) func()
	OnFavoritesChanged(fn func()) func()
}

// Catalog resolves preset ids.
type Catalog interface {
	Lookup(id string) (*preset.Preset, bool)
}

// Translator resolves localized strings.
type Translator = mode.Translator

// IconRenderer turns icon references and presets into glyphs.
type IconRenderer interface {
	Icon(ref string) string
	PresetIcon(p *preset.Preset, geometry, size string) string
}

// Layout is told when the toolbar's button count changed so the enclosing
// bar can be re-measured for overflow.
type Layout interface {
	CheckOverflow(selector string)
}

// Container holds per-mode marker classes on the editor's root element.
type Container interface {
	Classed(class string, on bool)
}

// BarSelector names the layout region the toolbar lives in.
const BarSelector = "#bar"
