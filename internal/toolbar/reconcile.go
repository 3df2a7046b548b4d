package toolbar

import (
	"io"
	"log/slog"

	"modebar/internal/mode"
)

// Button is a rendered mode button. Serial is assigned once at creation,
// so a button that survives a pass keeps its serial.
type Button struct {
	Mode    mode.Mode
	Serial  int
	Icon    string
	Label   string
	Tooltip string

	Disabled bool
	Active   bool
}

// Result summarizes one reconciliation pass.
type Result struct {
	Created       []string
	Removed       []string
	LayoutChanged bool
}

// Changed reports whether buttons were added or removed.
func (r Result) Changed() bool { return len(r.Created) > 0 || len(r.Removed) > 0 }

// Reconciler owns the rendered button set. Nothing else mutates it; other
// components ask for a new pass instead.
type Reconciler struct {
	ed     Editor
	tr     Translator
	icons  IconRenderer
	layout Layout
	logger *slog.Logger

	buttons []*Button
	byID    map[string]*Button
	serial  int
}

// NewReconciler returns a Reconciler with no buttons. layout may be nil.
func NewReconciler(ed Editor, tr Translator, icons IconRenderer, layout Layout, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reconciler{
		ed:     ed,
		tr:     tr,
		icons:  icons,
		layout: layout,
		logger: logger,
		byID:   map[string]*Button{},
	}
}

// Reconcile makes the rendered buttons match desired, keyed by mode id.
// Buttons keep the order of desired. Surviving buttons are updated in place
// and keep their identity; a repeated id in desired is ignored, as is a
// mode that fails validation.
func (r *Reconciler) Reconcile(desired []mode.Mode) Result {
	var res Result
	seen := make(map[string]bool, len(desired))
	next := make([]*Button, 0, len(desired))

	for _, m := range desired {
		if err := m.Validate(); err != nil {
			r.logger.Warn("skip invalid mode", "err", err)
			continue
		}
		if seen[m.ID] {
			r.logger.Warn("duplicate mode id in toolbar", "id", m.ID)
			continue
		}
		seen[m.ID] = true
		if b, ok := r.byID[m.ID]; ok {
			b.Mode = m
			b.Tooltip = TooltipText(r.tr, m.Description, m.Key)
			next = append(next, b)
			continue
		}
		next = append(next, r.create(m))
		res.Created = append(res.Created, m.ID)
	}
	for _, b := range r.buttons {
		if !seen[b.Mode.ID] {
			res.Removed = append(res.Removed, b.Mode.ID)
		}
	}

	r.buttons = next
	r.byID = make(map[string]*Button, len(next))
	for _, b := range next {
		r.byID[b.Mode.ID] = b
	}

	if res.Changed() {
		res.LayoutChanged = true
		if r.layout != nil {
			r.layout.CheckOverflow(BarSelector)
		}
		r.logger.Debug("toolbar changed", "created", res.Created, "removed", res.Removed)
	}
	r.refresh()
	return res
}

func (r *Reconciler) create(m mode.Mode) *Button {
	r.serial++
	b := &Button{
		Mode:    m,
		Serial:  r.serial,
		Label:   m.Title,
		Tooltip: TooltipText(r.tr, m.Description, m.Key),
	}
	if m.Preset != nil {
		b.Icon = r.icons.PresetIcon(m.Preset, m.Geometry.String(), "small")
	} else {
		ref := m.Icon
		if ref == "" {
			ref = "#iD-icon-" + m.Button
		}
		b.Icon = r.icons.Icon(ref)
	}
	return b
}

// refresh recomputes the disabled and active flags of every button.
func (r *Reconciler) refresh() {
	cur := r.ed.CurrentMode()
	for _, b := range r.buttons {
		b.Disabled = !IsEnabled(b.Mode, r.ed)
		b.Active = isActive(b.Mode, cur)
	}
}

// SetActive marks the buttons whose identity matches entered.
func (r *Reconciler) SetActive(entered mode.Mode) {
	for _, b := range r.buttons {
		b.Active = isActive(b.Mode, entered)
	}
}

func isActive(m, cur mode.Mode) bool {
	return cur.Button != "" && m.Button == cur.Button
}

// Click handles a press on the button with the given id. Clicks on
// disabled buttons, and any click while a drawing mode is active, are
// ignored. It reports whether the editor changed mode.
func (r *Reconciler) Click(id string) bool {
	b, ok := r.byID[id]
	if !ok {
		return false
	}
	m := b.Mode
	if !IsEnabled(m, r.ed) {
		r.logger.Debug("ignore click on disabled button", "id", id)
		return false
	}
	// Accidental clicks while drawing would abandon the feature in progress.
	if cur := r.ed.CurrentMode(); mode.IsDrawing(cur.ID) {
		r.logger.Debug("ignore click while drawing", "id", id, "current", cur.ID)
		return false
	}
	toggle(r.ed, r.tr, m)
	return true
}

// toggle leaves m for browse if it is current, otherwise enters it.
func toggle(ed Editor, tr Translator, m mode.Mode) {
	if m.ID == ed.CurrentMode().ID {
		ed.Enter(mode.Browse(tr))
		return
	}
	ed.Enter(m)
}

// Buttons returns a snapshot of the rendered buttons in display order.
func (r *Reconciler) Buttons() []Button {
	out := make([]Button, len(r.buttons))
	for i, b := range r.buttons {
		out[i] = *b
	}
	return out
}

// Button returns a snapshot of the button for id.
func (r *Reconciler) Button(id string) (Button, bool) {
	b, ok := r.byID[id]
	if !ok {
		return Button{}, false
	}
	return *b, true
}

func (r *Reconciler) Len() int { return len(r.buttons) }
