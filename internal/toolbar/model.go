package toolbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// debounceMsg is delivered when the timer for a trailing pass fires.
type debounceMsg struct{ deadline time.Time }

// Model is the bubbletea component that draws the toolbar and routes key
// presses to the coordinator.
type Model struct {
	coord     *Coordinator
	keys      KeyMap
	shortcuts []key.Binding
	styles    Styles

	focus     int
	focusID   string
	width     int
	scheduled time.Time
}

type Option func(*Model)

func WithNoColor(on bool) Option {
	return func(m *Model) {
		if on {
			m.styles = PlainStyles()
		}
	}
}

// New mounts coord and returns a Model drawing its buttons.
func New(coord *Coordinator, opts ...Option) Model {
	coord.Mount()
	m := Model{
		coord:     coord,
		keys:      DefaultKeyMap(),
		shortcuts: shortcutBindings(coord.Builtins()),
		styles:    DefaultStyles(),
	}
	for _, o := range opts {
		o(&m)
	}
	m.refocus()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		if msg.deadline.Equal(m.scheduled) {
			m.scheduled = time.Time{}
		}
		m.coord.Expire(msg.deadline)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		m.handleKey(msg)
	}
	return m.Sync()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	n := len(m.coord.Buttons())
	switch {
	case key.Matches(msg, m.keys.Next):
		if n > 0 {
			m.setFocus((m.focus + 1) % n)
		}
	case key.Matches(msg, m.keys.Prev):
		if n > 0 {
			m.setFocus((m.focus - 1 + n) % n)
		}
	case key.Matches(msg, m.keys.Press):
		if b, ok := m.Focused(); ok {
			m.coord.Click(b.Mode.ID)
		}
	default:
		for _, sc := range m.shortcuts {
			if key.Matches(msg, sc) {
				m.coord.Shortcut(sc.Keys()[0])
				return
			}
		}
	}
}

// Sync arms a tick for the coordinator's pending trailing pass, if any.
// Callers that change the editor outside Update call it afterwards.
func (m Model) Sync() (Model, tea.Cmd) {
	m.refocus()
	deadline, armed := m.coord.Deadline()
	if !armed || deadline.Equal(m.scheduled) {
		return m, nil
	}
	m.scheduled = deadline
	wait := deadline.Sub(m.coord.clock.Now())
	if wait < 0 {
		wait = 0
	}
	return m, tea.Tick(wait, func(time.Time) tea.Msg {
		return debounceMsg{deadline: deadline}
	})
}

func (m *Model) setFocus(i int) {
	m.focus = i
	m.focusID = ""
	if buttons := m.coord.Buttons(); i >= 0 && i < len(buttons) {
		m.focusID = buttons[i].Mode.ID
	}
}

// refocus follows the focused mode id to its position after a pass. When
// that button is gone, focus stays at the same index, clamped.
func (m *Model) refocus() {
	buttons := m.coord.Buttons()
	for i, b := range buttons {
		if b.Mode.ID == m.focusID {
			m.focus = i
			return
		}
	}
	m.setFocus(min(m.focus, max(len(buttons)-1, 0)))
}

// Focused returns the button under keyboard focus.
func (m Model) Focused() (Button, bool) {
	buttons := m.coord.Buttons()
	if m.focus < 0 || m.focus >= len(buttons) {
		return Button{}, false
	}
	return buttons[m.focus], true
}

func (m Model) Buttons() []Button { return m.coord.Buttons() }

func (m Model) Coordinator() *Coordinator { return m.coord }

func (m Model) KeyMap() KeyMap { return m.keys }

// Shortcuts returns the bindings for the built-in mode keys.
func (m Model) Shortcuts() []key.Binding { return m.shortcuts }

// Row renders the buttons on one line, without the tooltip.
func (m Model) Row() string {
	buttons := m.coord.Buttons()
	cells := make([]string, len(buttons))
	for i, b := range buttons {
		cells[i] = m.styles.render(b, i == m.focus)
	}
	return strings.Join(cells, " ")
}

func (m Model) View() string {
	row := m.Row()
	if m.width > 0 && lipgloss.Width(row) > m.width {
		row = lipgloss.NewStyle().Width(m.width).Render(row)
	}
	b, ok := m.Focused()
	if !ok || b.Tooltip == "" {
		return row
	}
	return row + "\n" + m.styles.tooltip(b.Tooltip)
}
