package mapview

import (
    "fmt"
    "math"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "modebar/internal/tui/util"
)

// Frame is what the map pane shows.
type Frame struct {
    Lat, Lon float64
    Zoom     float64
    Mode     string // title of the current mode
    Pending  string // glyph of the feature being drawn, if any
    Notes    bool
    Editable bool
}

type MapView struct {
    noColor bool
    palette util.Palette
}

func NewMapView(noColor bool) MapView {
    return MapView{noColor: noColor, palette: util.DefaultPalette()}
}

// View renders a width x height viewport: a terrain texture that scrolls
// with the map center, a crosshair, and a one-line header.
func (v MapView) View(f Frame, width, height int) string {
    if width < 8 {
        width = 8
    }
    if height < 3 {
        height = 3
    }
    var b strings.Builder
    header := fmt.Sprintf("z%.1f  %.4f,%.4f  %s", f.Zoom, f.Lat, f.Lon, f.Mode)
    if !f.Editable {
        header += "  (zoom in to edit)"
    }
    b.WriteString(clip(header, width) + "\n")

    // One terrain cell per 1/8 of the visible span at this zoom.
    cell := 360 / math.Pow(2, f.Zoom) / 8
    ox := int(math.Floor(f.Lon / cell))
    oy := int(math.Floor(f.Lat / cell))
    rows := height - 1
    cx, cy := width/2, rows/2
    for y := 0; y < rows; y++ {
        var row strings.Builder
        for x := 0; x < width; x++ {
            if x == cx && y == cy {
                cross := "+"
                if f.Pending != "" {
                    cross = f.Pending
                }
                row.WriteString(cross)
                continue
            }
            row.WriteString(v.terrain(ox+x-cx, oy-(y-cy), f.Notes))
        }
        b.WriteString(row.String())
        if y < rows-1 {
            b.WriteString("\n")
        }
    }
    return b.String()
}

// terrain picks a deterministic glyph for a world cell.
func (v MapView) terrain(x, y int, notes bool) string {
    h := uint32(x)*2654435761 ^ uint32(y)*2246822519
    h ^= h >> 13
    switch {
    case h%29 == 0:
        return v.paint(v.palette.Water, "~")
    case notes && h%97 == 0:
        return v.paint(v.palette.Warning, "!")
    case h%7 == 0:
        return v.paint(v.palette.Land, ".")
    default:
        return " "
    }
}

func (v MapView) paint(c lipgloss.Color, s string) string {
    if v.noColor {
        return s
    }
    return lipgloss.NewStyle().Foreground(c).Render(s)
}

func clip(s string, width int) string {
    r := []rune(s)
    if len(r) <= width {
        return s
    }
    return string(r[:width])
}
