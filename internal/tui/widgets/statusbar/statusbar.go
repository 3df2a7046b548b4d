package statusbar

import (
    "fmt"
    "strings"

    "modebar/internal/tui/state"
)

// Info is the editor state shown in the status line.
type Info struct {
    Mode    string
    Lat     float64
    Lon     float64
    Markers []string // container marker classes, sorted
    Passes  int      // toolbar reconciliation passes
}

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, info Info) string {
    pane := "[MAP]"
    if s.Pane == state.TracePane {
        pane = "[TRACE]"
    }
    mode := "Mode: " + info.Mode
    pos := fmt.Sprintf("%.4f,%.4f", info.Lat, info.Lon)
    passes := fmt.Sprintf("P:%d", info.Passes)

    parts := []string{pane, mode, pos, passes}
    if len(info.Markers) > 0 {
        parts = append(parts, "."+strings.Join(info.Markers, "."))
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
