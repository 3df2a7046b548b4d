package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/key"
)

// Section is a titled group of key bindings.
type Section struct {
    Title    string
    Bindings []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help. Disabled bindings are left out.
func (HelpOverlay) View(mode string, sections []Section) string {
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        for _, k := range sec.Bindings {
            if !k.Enabled() {
                continue
            }
            h := k.Help()
            fmt.Fprintf(&b, "  %s: %s\n", h.Key, h.Desc)
        }
    }
    return b.String()
}
