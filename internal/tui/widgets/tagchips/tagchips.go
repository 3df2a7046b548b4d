package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "modebar/internal/tui/state"
    "modebar/internal/tui/util"
)

// View renders editor status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t, util.DefaultPalette()).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.DRAWING:
        return "Drawing"
    case state.SAVING:
        return "Saving"
    case state.EDITABLE:
        return "Editable"
    case state.READ_ONLY:
        return "Read-only"
    case state.NOTES_LAYER:
        return "Notes"
    case state.NOTES_EDITABLE:
        return "Notes editable"
    case state.OVERFLOW:
        return fmt.Sprintf("Overflow +%d", t.Value)
    case state.ZOOM:
        return fmt.Sprintf("z%d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    white := lipgloss.Color("#FFFFFF")
    switch t.Kind {
    case state.DRAWING:
        return base.Background(p.Primary).Foreground(white)
    case state.SAVING, state.OVERFLOW:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.EDITABLE, state.NOTES_EDITABLE:
        return base.Background(p.Success).Foreground(white)
    case state.READ_ONLY:
        return base.Background(p.Danger).Foreground(white)
    case state.NOTES_LAYER, state.ZOOM:
        return base.Background(p.Muted).Foreground(white)
    default:
        return base
    }
}
