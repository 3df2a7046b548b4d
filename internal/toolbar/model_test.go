package toolbar

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"modebar/internal/editor"
	"modebar/internal/mode"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModelRendersPlainButtons(t *testing.T) {
	f := newFixture(t, editor.DefaultOptions(), coffeePoint)
	m := New(f.coord, WithNoColor(true))

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "> ● Point "), lines[0])
	require.Contains(t, lines[0], " ☕ Coffee Shop ")
	require.True(t, strings.HasSuffix(lines[1], "Shortcut: 1"), lines[1])
}

func TestModelFocusAndPress(t *testing.T) {
	f := newFixture(t, editor.DefaultOptions())
	m := New(f.coord, WithNoColor(true))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	b, ok := m.Focused()
	require.True(t, ok)
	require.Equal(t, mode.IDAddLine, b.Mode.ID)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, mode.IDAddLine, f.host.CurrentMode().ID)
	require.Contains(t, m.Row(), "[╱ Line]")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	b, _ = m.Focused()
	require.Equal(t, mode.IDAddArea, b.Mode.ID, "focus wraps backwards")
}

func TestModelShortcutKeys(t *testing.T) {
	f := newFixture(t, editor.DefaultOptions())
	m := New(f.coord)
	require.Len(t, m.Shortcuts(), 4)

	m, _ = m.Update(keyRunes("3"))
	require.Equal(t, mode.IDAddArea, f.host.CurrentMode().ID)
	m.Update(keyRunes("3"))
	require.Equal(t, mode.IDBrowse, f.host.CurrentMode().ID)
}

func TestModelSchedulesTrailingPass(t *testing.T) {
	f := newFixture(t, editor.DefaultOptions())
	m := New(f.coord)
	passes := f.coord.Passes()

	f.host.Pan(1, 0)
	require.Equal(t, passes+1, f.coord.Passes())

	m, cmd := m.Sync()
	require.NotNil(t, cmd)
	_, again := m.Sync()
	require.Nil(t, again, "deadline already scheduled")

	dl, _ := f.coord.Deadline()
	f.clock.now = dl
	m, cmd = m.Update(debounceMsg{deadline: dl})
	require.Nil(t, cmd)
	require.Equal(t, passes+2, f.coord.Passes())
}

func TestModelFocusClampsWhenButtonsShrink(t *testing.T) {
	f := newFixture(t, notesOptions())
	m := New(f.coord)
	for range 3 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	b, _ := m.Focused()
	require.Equal(t, mode.IDAddNote, b.Mode.ID)

	require.NoError(t, f.host.SetLayerEnabled(editor.LayerNotes, false))
	m, _ = m.Sync()
	b, _ = m.Focused()
	require.Equal(t, mode.IDAddArea, b.Mode.ID)
}

func TestModelFocusFollowsButtonAcrossPasses(t *testing.T) {
	f := newFixture(t, editor.DefaultOptions(), coffeePoint)
	m := New(f.coord)
	for range 3 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	b, _ := m.Focused()
	require.Equal(t, coffeePointID, b.Mode.ID)

	require.NoError(t, f.host.SetLayerEnabled(editor.LayerNotes, true))
	m, _ = m.Sync()
	require.Equal(t, []string{mode.IDAddPoint, mode.IDAddLine, mode.IDAddArea, mode.IDAddNote, coffeePointID}, buttonIDs(m.Buttons()))
	b, _ = m.Focused()
	require.Equal(t, coffeePointID, b.Mode.ID, "inserted note button must not steal focus")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, coffeePointID, f.host.CurrentMode().ID)
}

// harness runs the toolbar as a full program.
type harness struct{ bar Model }

func (h harness) Init() tea.Cmd { return h.bar.Init() }

func (h harness) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.bar, cmd = h.bar.Update(msg)
	return h, cmd
}

func (h harness) View() string { return h.bar.View() }

func TestModelInProgram(t *testing.T) {
	f := newFixture(t, editor.DefaultOptions())
	tm := teatest.NewTestModel(t, harness{bar: New(f.coord, WithNoColor(true))},
		teatest.WithInitialTermSize(120, 10))

	tm.Send(keyRunes("2"))
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(harness)
	require.Equal(t, mode.IDAddLine, f.host.CurrentMode().ID)
	line, _ := final.bar.Coordinator().Button(mode.IDAddLine)
	require.True(t, line.Active)
}
