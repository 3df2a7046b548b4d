package toolbar

import "github.com/charmbracelet/lipgloss"

// Styles controls how buttons are drawn.
type Styles struct {
	Button   lipgloss.Style
	Active   lipgloss.Style
	Disabled lipgloss.Style
	Focused  lipgloss.Style
	Tooltip  lipgloss.Style
	NoColor  bool
}

func DefaultStyles() Styles {
	base := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Button:   base.Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"}),
		Active:   base.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3D6DFF")),
		Disabled: base.Faint(true),
		Focused:  lipgloss.NewStyle().Underline(true),
		Tooltip:  lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles renders with bracket markers instead of color: [active],
// (disabled), and a '>' before the focused button.
func PlainStyles() Styles {
	return Styles{NoColor: true}
}

func (s Styles) render(b Button, focused bool) string {
	text := b.Icon + " " + b.Label
	if s.NoColor {
		switch {
		case b.Active:
			text = "[" + text + "]"
		case b.Disabled:
			text = "(" + text + ")"
		default:
			text = " " + text + " "
		}
		if focused {
			return ">" + text
		}
		return text
	}
	var st lipgloss.Style
	switch {
	case b.Active:
		st = s.Active
	case b.Disabled:
		st = s.Disabled
	default:
		st = s.Button
	}
	if focused {
		st = st.Inherit(s.Focused)
	}
	return st.Render(text)
}

func (s Styles) tooltip(text string) string {
	if s.NoColor {
		return text
	}
	return s.Tooltip.Render(text)
}
