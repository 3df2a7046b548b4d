package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"modebar/internal/config"
	"modebar/internal/editor"
	"modebar/internal/locale"
	"modebar/internal/preset"
	"modebar/internal/toolbar"
	"modebar/internal/tui/state"
	"modebar/internal/tui/util"
	"modebar/internal/tui/widgets/diff"
	"modebar/internal/tui/widgets/helpoverlay"
	"modebar/internal/tui/widgets/mapview"
	"modebar/internal/tui/widgets/statusbar"
	"modebar/internal/tui/widgets/tagchips"
)

// Options wires the editor program.
type Options struct {
	Config     config.Config
	ConfigPath string // where w writes; empty resolves the default
	Catalog    *preset.Catalog
	Translator *locale.Table
	Store      editor.FavoriteStore
	Logger     *slog.Logger
	NoColor    bool

	// Clock and Copy default to the wall clock and the system clipboard.
	Clock toolbar.Clock
	Copy  func(string) error
}

// Run starts the terminal editor with the toolbar mounted and blocks until
// the user quits.
func Run(ctx context.Context, opts Options) error {
	m, err := newModel(ctx, opts)
	if err != nil {
		return err
	}
	defer m.bar.Coordinator().Unmount()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// ===== Model =====

type model struct {
	ctx    context.Context
	opts   Options
	logger *slog.Logger

	host    *editor.Host
	bar     toolbar.Model
	classes classSet
	layout  *barLayout

	keys     keyMap
	ui       state.UIState
	noColor  bool
	overflow int

	// trace holds the button rows before and after the last change
	traceBefore string
	traceAfter  string

	status statusbar.StatusBar
	help   helpoverlay.HelpOverlay
	mapv   mapview.MapView
	trace  diff.TraceView
}

func newModel(ctx context.Context, opts Options) (model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	host, err := editor.New(ctx, opts.Translator, opts.Store, opts.Config.EditorOptions(), logger)
	if err != nil {
		return model{}, err
	}

	classes := classSet{}
	layout := &barLayout{}
	coord := toolbar.NewCoordinator(toolbar.Config{
		Host:       host,
		Catalog:    opts.Catalog,
		Translator: opts.Translator,
		Icons:      preset.Icons{},
		Layout:     layout,
		Container:  classes,
		Clock:      opts.Clock,
		Debounce:   opts.Config.Toolbar.Debounce,
		Logger:     logger,
	})
	noColor := util.NoColor(opts.NoColor || opts.Config.Toolbar.NoColor)

	m := model{
		ctx:     ctx,
		opts:    opts,
		logger:  logger,
		host:    host,
		bar:     toolbar.New(coord, toolbar.WithNoColor(noColor)),
		classes: classes,
		layout:  layout,
		keys:    defaultKeyMap(),
		noColor: noColor,
		status:  statusbar.NewStatusBar(),
		help:    helpoverlay.NewHelpOverlay(),
		mapv:    mapview.NewMapView(noColor),
		trace:   diff.NewTraceView(noColor),
	}
	m.afterUpdate()
	return m, nil
}

func (m model) Init() tea.Cmd { return m.bar.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout.dirty = true
		m.bar, cmd = m.bar.Update(msg)
	case tea.KeyMsg:
		var handled bool
		if m.ui.Picking {
			cmd, handled = m.updatePicker(msg), true
		} else {
			cmd, handled = m.handleKey(msg)
		}
		if handled {
			var sync tea.Cmd
			m.bar, sync = m.bar.Sync()
			cmd = tea.Batch(cmd, sync)
		} else {
			m.bar, cmd = m.bar.Update(msg)
		}
	default:
		m.bar, cmd = m.bar.Update(msg)
	}
	m.afterUpdate()
	return m, cmd
}

// handleKey applies editor and view bindings. Keys it does not claim go to
// the toolbar.
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	const step = 0.25
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
	case key.Matches(msg, m.keys.Trace):
		m.ui = state.ToggleTrace(m.ui)
	case key.Matches(msg, m.keys.Up):
		m.host.Pan(0, step)
	case key.Matches(msg, m.keys.Down):
		m.host.Pan(0, -step)
	case key.Matches(msg, m.keys.Left):
		m.host.Pan(-step, 0)
	case key.Matches(msg, m.keys.Right):
		m.host.Pan(step, 0)
	case key.Matches(msg, m.keys.ZoomIn):
		m.host.ZoomBy(1)
	case key.Matches(msg, m.keys.ZoomOut):
		m.host.ZoomBy(-1)
	case key.Matches(msg, m.keys.Place):
		if !m.host.PlaceNode() {
			m.ui = state.SetNotice(m.ui, "nothing to place")
		}
	case key.Matches(msg, m.keys.Escape):
		if m.ui.ShowHelp {
			m.ui = state.ToggleHelp(m.ui)
		} else {
			m.host.Escape()
		}
	case key.Matches(msg, m.keys.Save):
		m.host.Save()
	case key.Matches(msg, m.keys.Notes):
		if err := m.host.SetLayerEnabled(editor.LayerNotes, !m.host.NotesLayerEnabled()); err != nil {
			m.ui = state.SetNotice(m.ui, "! "+err.Error())
		}
	case key.Matches(msg, m.keys.Picker):
		m.ui = state.OpenPicker(m.ui)
	case key.Matches(msg, m.keys.Yank):
		m.yank()
	case key.Matches(msg, m.keys.Write):
		m.writeConfig()
	default:
		return nil, false
	}
	return nil, true
}

func (m *model) yank() {
	b, ok := m.bar.Focused()
	if !ok {
		return
	}
	if err := m.opts.Copy(b.Mode.ID); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		m.ui = state.SetNotice(m.ui, "! clipboard: "+err.Error())
		return
	}
	m.ui = state.SetNotice(m.ui, "copied "+b.Mode.ID)
}

// writeConfig persists the current viewport and layer choices.
func (m *model) writeConfig() {
	cfg := m.opts.Config
	center := m.host.Center()
	cfg.Editor.Zoom = m.host.Zoom()
	cfg.Editor.Lat = center.Lat
	cfg.Editor.Lon = center.Lon
	cfg.Layers.Notes = m.host.NotesLayerEnabled()

	path := config.Resolve(m.opts.ConfigPath)
	if err := config.Save(path, cfg); err != nil {
		m.logger.Error("save config", "path", path, "err", err)
		m.ui = state.SetNotice(m.ui, "! "+err.Error())
		return
	}
	m.opts.Config = cfg
	m.logger.Info("config written", "path", path)
	m.ui = state.SetNotice(m.ui, "wrote "+path)
}

// afterUpdate re-measures the toolbar when its button count changed and
// records the row for the trace pane.
func (m *model) afterUpdate() {
	if m.layout.dirty {
		m.layout.dirty = false
		m.overflow = measure(m.bar.Row(), m.ui.Width)
	}
	if snap := traceText(m.bar.Buttons()); snap != m.traceAfter {
		m.traceBefore, m.traceAfter = m.traceAfter, snap
	}
}

// ===== Views =====

var titleStyle = lipgloss.NewStyle().Bold(true)

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.bar.View() + "\n\n")

	width := m.ui.Width
	if width <= 0 {
		width = 60
	}
	height := m.ui.Height - 6
	if height < 3 {
		height = 3
	}

	switch {
	case m.ui.ShowHelp:
		b.WriteString(m.help.View(m.host.CurrentMode().ID, m.keys.sections(m.bar)))
	case m.ui.Picking:
		b.WriteString(m.viewPicker())
	case m.ui.Pane == state.TracePane:
		b.WriteString(m.title("Toolbar trace") + "\n")
		b.WriteString(m.trace.View(m.traceBefore, m.traceAfter))
	default:
		b.WriteString(m.mapv.View(m.frame(), width, height))
	}
	b.WriteString("\n")

	b.WriteString(tagchips.View(util.ComputeTags(m.flags()), m.noColor) + "\n")
	center := m.host.Center()
	b.WriteString(m.status.View(m.ui, statusbar.Info{
		Mode:    m.host.CurrentMode().ID,
		Lat:     center.Lat,
		Lon:     center.Lon,
		Markers: m.classes.sorted(),
		Passes:  m.bar.Coordinator().Passes(),
	}))
	return b.String()
}

func (m model) title(s string) string {
	if m.noColor {
		return s
	}
	return titleStyle.Render(s)
}

func (m model) flags() util.Flags {
	return util.Flags{
		Phase:         m.host.Phase().Kind,
		ReadOnly:      m.host.Options().ReadOnly,
		DataEditable:  m.host.IsDataEditable(),
		NotesLayer:    m.host.NotesLayerEnabled(),
		NotesEditable: m.host.MapNotesEditable(),
		Overflow:      m.overflow,
		Zoom:          m.host.Zoom(),
	}
}

func (m model) frame() mapview.Frame {
	cur := m.host.CurrentMode()
	center := m.host.Center()
	f := mapview.Frame{
		Lat:      center.Lat,
		Lon:      center.Lon,
		Zoom:     m.host.Zoom(),
		Mode:     cur.Title,
		Notes:    m.host.NotesLayerEnabled(),
		Editable: m.host.IsDataEditable(),
	}
	if m.host.Phase().Kind == editor.Drawing {
		for _, btn := range m.bar.Buttons() {
			if btn.Mode.Button == cur.Button {
				f.Pending = btn.Icon
				break
			}
		}
	}
	return f
}
