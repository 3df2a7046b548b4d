package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"modebar/internal/preset"
	"modebar/internal/tui/state"
)

const pickerLimit = 8

var (
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// pickerResults lists presets matching the query, or the whole catalog
// when the query is empty.
func (m model) pickerResults() []*preset.Preset {
	if strings.TrimSpace(m.ui.PickerQuery) == "" {
		all := m.opts.Catalog.All()
		if len(all) > pickerLimit {
			all = all[:pickerLimit]
		}
		return all
	}
	matches := m.opts.Catalog.Search(m.ui.PickerQuery, pickerLimit)
	out := make([]*preset.Preset, len(matches))
	for i, mt := range matches {
		out[i] = mt.Preset
	}
	return out
}

// selected returns the preset and geometry under the picker cursor.
func (m model) selected() (*preset.Preset, string, bool) {
	results := m.pickerResults()
	if m.ui.PickerCursor >= len(results) {
		return nil, "", false
	}
	p := results[m.ui.PickerCursor]
	if len(p.Geometry) == 0 {
		return p, "", false
	}
	return p, p.Geometry[m.ui.PickerGeom%len(p.Geometry)], true
}

func (m *model) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		m.ui = state.ClosePicker(m.ui)
	case tea.KeyUp:
		m.ui = state.MovePicker(m.ui, -1, len(m.pickerResults()))
	case tea.KeyDown:
		m.ui = state.MovePicker(m.ui, 1, len(m.pickerResults()))
	case tea.KeyTab:
		if p, _, ok := m.selected(); ok {
			m.ui = state.CycleGeom(m.ui, len(p.Geometry))
		}
	case tea.KeyBackspace:
		m.ui = state.Backspace(m.ui)
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			m.ui = state.TypeQuery(m.ui, r)
		}
	default:
		if key.Matches(msg, m.keys.Favorite) {
			m.toggleSelected()
		}
	}
	return nil
}

func (m *model) toggleSelected() {
	p, geom, ok := m.selected()
	if !ok {
		return
	}
	f := preset.Favorite{PresetID: p.ID, Geom: geom}
	added, err := m.host.ToggleFavorite(m.ctx, f)
	if err != nil {
		m.logger.Error("toggle favorite", "preset", p.ID, "geom", geom, "err", err)
		m.ui = state.SetNotice(m.ui, "! "+err.Error())
		return
	}
	verb := "removed"
	if added {
		verb = "added"
	}
	m.ui = state.SetNotice(m.ui, fmt.Sprintf("%s %s (%s)", verb, p.Name(), geom))
}

func (m model) isFavorite(f preset.Favorite) bool {
	for _, have := range m.host.Favorites() {
		if have == f {
			return true
		}
	}
	return false
}

func (m model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.title("Favorite presets") + "\n")
	b.WriteString("> " + m.ui.PickerQuery + "▏\n")
	results := m.pickerResults()
	if len(results) == 0 {
		b.WriteString("  no presets match\n")
	}
	icons := preset.Icons{}
	for i, p := range results {
		geoms := make([]string, len(p.Geometry))
		for j, g := range p.Geometry {
			label := g
			if m.isFavorite(preset.Favorite{PresetID: p.ID, Geom: g}) {
				label += "★"
			}
			if i == m.ui.PickerCursor && j == m.ui.PickerGeom%len(p.Geometry) {
				label = "[" + label + "]"
			}
			geoms[j] = label
		}
		line := fmt.Sprintf("%s %-18s %s", icons.Icon("#"+p.Icon), p.Name(), strings.Join(geoms, " "))
		if i == m.ui.PickerCursor {
			if m.noColor {
				line = "> " + line
			} else {
				line = selStyle.Render("> " + line)
			}
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	hint := "type: search   ↑/↓: move   tab: geometry   enter: toggle favorite   esc: close"
	if !m.noColor {
		hint = faintStyle.Render(hint)
	}
	b.WriteString("\n" + hint + "\n")
	return b.String()
}
