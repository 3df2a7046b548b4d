package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"modebar/internal/mode"
	"modebar/internal/preset"
)

// ErrUnknownLayer is returned when toggling a layer the host does not have.
var ErrUnknownLayer = errors.New("unknown layer")

const (
	LayerData  = "osm"
	LayerNotes = "notes"

	minZoom = 2
	maxZoom = 22
)

// Options configures a Host.
type Options struct {
	Zoom            float64
	Center          LatLon
	MinEditableZoom float64
	MinNotesZoom    float64
	ReadOnly        bool

	// Layers lists the layers the host provides. A missing notes layer
	// means notes can never be added.
	Layers       []string
	NotesEnabled bool
}

// DefaultOptions mirrors the editor's stock behaviour: data is editable
// from z16, notes from z12.
func DefaultOptions() Options {
	return Options{
		Zoom:            16,
		MinEditableZoom: 16,
		MinNotesZoom:    12,
		Layers:          []string{LayerData, LayerNotes},
	}
}

// LatLon is a map position in degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// Layer is a toggleable map data layer.
type Layer struct {
	Name    string
	enabled bool
}

func (l *Layer) Enabled() bool { return l != nil && l.enabled }

// Host is the in-process editor the toolbar is mounted against. It owns
// the current mode, map viewport, layers and favorite presets, and
// notifies subscribers of lifecycle and viewport events.
//
// A Host is not safe for concurrent use; the TUI drives it from its
// update loop.
type Host struct {
	tr     mode.Translator
	logger *slog.Logger
	store  FavoriteStore

	current   mode.Mode
	zoom      float64
	center    LatLon
	opts      Options
	layers    map[string]*Layer
	favorites []preset.Favorite

	onEnter     listeners[mode.Mode]
	onExit      listeners[mode.Mode]
	onMove      listeners[struct{}]
	onDrawn     listeners[struct{}]
	onFavorites listeners[struct{}]
}

// New creates a Host in browse mode and loads favorites from store.
func New(ctx context.Context, tr mode.Translator, store FavoriteStore, opts Options, logger *slog.Logger) (*Host, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if store == nil {
		store = NewMemoryFavorites()
	}
	h := &Host{
		tr:      tr,
		logger:  logger,
		store:   store,
		current: mode.Browse(tr),
		zoom:    clampZoom(opts.Zoom),
		center:  opts.Center,
		opts:    opts,
		layers:  map[string]*Layer{},
	}
	for _, name := range opts.Layers {
		h.layers[name] = &Layer{Name: name, enabled: name != LayerNotes || opts.NotesEnabled}
	}
	favs, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	h.favorites = favs
	return h, nil
}

// ===== mode state machine =====

// CurrentMode returns the mode the editor is in.
func (h *Host) CurrentMode() mode.Mode { return h.current }

// Phase returns the lifecycle state derived from the current mode.
func (h *Host) Phase() Phase { return PhaseOf(h.current) }

// Enter exits the current mode and enters m, notifying exit then enter
// subscribers.
func (h *Host) Enter(m mode.Mode) {
	old := h.current
	if !old.IsZero() {
		h.onExit.emit(old)
	}
	h.current = m
	h.logger.Debug("enter mode", "from", old.ID, "to", m.ID, "phase", PhaseOf(m).String())
	h.onEnter.emit(m)
}

// PlaceNode simulates a map click in the current mode: add modes start
// drawing (lines, areas) or finish immediately (points, notes), draw modes
// finish the feature.
func (h *Host) PlaceNode() bool {
	if !h.IsDataEditable() && h.current.Kind != mode.KindAddNote {
		return false
	}
	switch h.current.Kind {
	case mode.KindAddLine:
		h.Enter(mode.DrawLine(h.tr, h.current))
	case mode.KindAddArea:
		h.Enter(mode.DrawArea(h.tr, h.current))
	case mode.KindAddPoint, mode.KindAddNote, mode.KindDrawLine, mode.KindDrawArea:
		h.Enter(mode.Select(h.tr))
	default:
		return false
	}
	return true
}

// Escape abandons whatever the editor is doing and returns to browse.
func (h *Host) Escape() {
	if h.current.Kind == mode.KindBrowse {
		return
	}
	h.Enter(mode.Browse(h.tr))
}

// Save enters the terminal save mode; calling it again leaves it.
func (h *Host) Save() {
	if h.current.Kind == mode.KindSave {
		h.Enter(mode.Browse(h.tr))
		return
	}
	h.Enter(mode.Save(h.tr))
}

// ===== permissions =====

// IsDataEditable reports whether map data may be edited at the current
// viewport.
func (h *Host) IsDataEditable() bool {
	if h.opts.ReadOnly {
		return false
	}
	if l := h.layers[LayerData]; l != nil && !l.Enabled() {
		return false
	}
	return h.zoom >= h.opts.MinEditableZoom
}

// MapNotesEditable reports whether notes may be added at the current zoom.
func (h *Host) MapNotesEditable() bool {
	if h.opts.ReadOnly {
		return false
	}
	return h.zoom >= h.opts.MinNotesZoom
}

// NotesLayerEnabled reports whether a notes layer exists and is shown.
func (h *Host) NotesLayerEnabled() bool {
	return h.layers[LayerNotes].Enabled()
}

// ===== layers =====

// SetLayerEnabled toggles a layer and redraws the map.
func (h *Host) SetLayerEnabled(name string, on bool) error {
	l, ok := h.layers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, name)
	}
	if l.enabled == on {
		return nil
	}
	l.enabled = on
	h.logger.Info("layer toggled", "layer", name, "enabled", on)
	h.onDrawn.emit(struct{}{})
	return nil
}

// ===== viewport =====

func (h *Host) Zoom() float64    { return h.zoom }
func (h *Host) Center() LatLon   { return h.center }
func (h *Host) Options() Options { return h.opts }

// Pan moves the map center by a fraction of the visible span.
func (h *Host) Pan(dx, dy float64) {
	span := 360 / math.Pow(2, h.zoom)
	h.center.Lon += dx * span
	h.center.Lat = math.Max(-85, math.Min(85, h.center.Lat+dy*span))
	h.moved()
}

// ZoomBy changes the zoom level by delta, clamped to the supported range.
func (h *Host) ZoomBy(delta float64) {
	z := clampZoom(h.zoom + delta)
	if z == h.zoom {
		return
	}
	h.zoom = z
	h.moved()
}

func (h *Host) moved() {
	h.onMove.emit(struct{}{})
	h.onDrawn.emit(struct{}{})
}

func clampZoom(z float64) float64 {
	return math.Max(minZoom, math.Min(maxZoom, z))
}

// ===== favorites =====

// Favorites returns the favorite preset list in display order.
func (h *Host) Favorites() []preset.Favorite {
	return append([]preset.Favorite(nil), h.favorites...)
}

// ToggleFavorite adds or removes f and notifies subscribers.
func (h *Host) ToggleFavorite(ctx context.Context, f preset.Favorite) (bool, error) {
	added, err := h.store.Toggle(ctx, f)
	if err != nil {
		return false, fmt.Errorf("toggle favorite %s/%s: %w", f.PresetID, f.Geom, err)
	}
	favs, err := h.store.List(ctx)
	if err != nil {
		return added, fmt.Errorf("reload favorites: %w", err)
	}
	h.favorites = favs
	h.logger.Info("favorite toggled", "preset", f.PresetID, "geom", f.Geom, "added", added)
	h.onFavorites.emit(struct{}{})
	return added, nil
}

// ===== subscriptions =====

func (h *Host) OnEnter(fn func(mode.Mode)) func() { return h.onEnter.add(fn) }
func (h *Host) OnExit(fn func(mode.Mode)) func()  { return h.onExit.add(fn) }
func (h *Host) OnMove(fn func()) func()           { return h.onMove.add(func(struct{}) { fn() }) }
func (h *Host) OnDrawn(fn func()) func()          { return h.onDrawn.add(func(struct{}) { fn() }) }
func (h *Host) OnFavoritesChanged(fn func()) func() {
	return h.onFavorites.add(func(struct{}) { fn() })
}

// Subscribers reports the number of live subscriptions, for leak checks.
func (h *Host) Subscribers() int {
	return h.onEnter.len() + h.onExit.len() + h.onMove.len() + h.onDrawn.len() + h.onFavorites.len()
}
