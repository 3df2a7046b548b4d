package toolbar

import (
	"io"
	"log/slog"
	"time"

	"modebar/internal/mode"
)

// Host is everything the coordinator needs from the editor.
type Host interface {
	Editor
	Events
}

// Config wires a Coordinator. Catalog, Translator and Icons are required.
type Config struct {
	Host       Host
	Catalog    Catalog
	Translator Translator
	Icons      IconRenderer
	Layout     Layout
	Container  Container
	Clock      Clock
	Debounce   time.Duration
	Logger     *slog.Logger
}

// Coordinator turns editor events into reconciliation passes.
type Coordinator struct {
	host      Host
	catalog   Catalog
	tr        Translator
	container Container
	clock     Clock
	logger    *slog.Logger

	builtins   []mode.Mode
	reconciler *Reconciler
	debounce   *Debouncer

	unsubscribe []func()
	mounted     bool
	passes      int
}

func NewCoordinator(cfg Config) *Coordinator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock
	}
	return &Coordinator{
		host:       cfg.Host,
		catalog:    cfg.Catalog,
		tr:         cfg.Translator,
		container:  cfg.Container,
		clock:      clock,
		logger:     logger,
		builtins:   mode.Builtins(cfg.Translator),
		reconciler: NewReconciler(cfg.Host, cfg.Translator, cfg.Icons, cfg.Layout, logger),
		debounce:   NewDebouncer(cfg.Debounce),
	}
}

// Mount subscribes to editor events and runs the first pass. Mounting
// twice is a no-op.
func (c *Coordinator) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.unsubscribe = append(c.unsubscribe,
		c.host.OnEnter(c.handleEnter),
		c.host.OnExit(c.handleExit),
		c.host.OnMove(c.MapChanged),
		c.host.OnDrawn(c.MapChanged),
		c.host.OnFavoritesChanged(func() { c.Update() }),
	)
	c.Update()
}

// Unmount drops every subscription and any pending debounced pass.
func (c *Coordinator) Unmount() {
	for _, fn := range c.unsubscribe {
		fn()
	}
	c.unsubscribe = nil
	c.debounce.Cancel()
	c.mounted = false
}

func (c *Coordinator) handleEnter(entered mode.Mode) {
	c.reconciler.SetActive(entered)
	if c.container != nil {
		c.container.Classed("mode-"+entered.ID, true)
	}
	c.Update()
}

func (c *Coordinator) handleExit(exited mode.Mode) {
	if c.container != nil {
		c.container.Classed("mode-"+exited.ID, false)
	}
}

// MapChanged feeds a viewport event through the debounce policy, running
// a pass on the leading edge.
func (c *Coordinator) MapChanged() {
	if c.debounce.Call(c.clock.Now()) {
		c.Update()
	}
}

// Deadline reports when Expire should next be called for a trailing pass.
func (c *Coordinator) Deadline() (time.Time, bool) {
	return c.debounce.Deadline()
}

// Expire is called when the timer armed for deadline fires. Stale timers,
// whose deadline has since moved, are ignored.
func (c *Coordinator) Expire(deadline time.Time) {
	cur, armed := c.debounce.Deadline()
	if !armed || !cur.Equal(deadline) {
		return
	}
	if c.debounce.Expire(c.clock.Now()) {
		c.Update()
	}
}

// DesiredModes builds the button list for the current editor state: the
// built-ins (without add-note unless the notes layer is shown) followed by
// the favorite presets.
func (c *Coordinator) DesiredModes() []mode.Mode {
	builtins := c.builtins
	if !c.host.NotesLayerEnabled() {
		builtins = builtins[:3]
	}
	favorites := DeriveFavoriteModes(c.host.Favorites(), c.catalog, c.tr, c.logger)
	out := make([]mode.Mode, 0, len(builtins)+len(favorites))
	out = append(out, builtins...)
	return append(out, favorites...)
}

// Update runs a full reconciliation pass.
func (c *Coordinator) Update() Result {
	c.passes++
	return c.reconciler.Reconcile(c.DesiredModes())
}

// Click forwards a button press to the reconciler.
func (c *Coordinator) Click(id string) bool {
	return c.reconciler.Click(id)
}

// Shortcut activates the built-in mode bound to key. Shortcuts share the
// click handler's enablement check and toggle behaviour but are honoured
// while drawing.
func (c *Coordinator) Shortcut(key string) bool {
	for _, m := range c.builtins {
		if m.Key == "" || m.Key != key {
			continue
		}
		if !IsEnabled(m, c.host) {
			c.logger.Debug("ignore shortcut for disabled mode", "key", key, "id", m.ID)
			return false
		}
		toggle(c.host, c.tr, m)
		return true
	}
	return false
}

// Builtins returns the fixed modes, including add-note.
func (c *Coordinator) Builtins() []mode.Mode {
	return append([]mode.Mode(nil), c.builtins...)
}

func (c *Coordinator) Buttons() []Button               { return c.reconciler.Buttons() }
func (c *Coordinator) Button(id string) (Button, bool) { return c.reconciler.Button(id) }

// Passes counts reconciliation passes run so far.
func (c *Coordinator) Passes() int { return c.passes }
