package helpoverlay

import (
    "strings"
    "testing"

    "github.com/charmbracelet/bubbles/key"
)

func TestGroupsBindings(t *testing.T) {
    save := key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save"))
    hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())
    out := NewHelpOverlay().View("browse", []Section{{Title: "Editor", Bindings: []key.Binding{save, hidden}}})
    if !strings.HasPrefix(out, "Help (Mode: browse)\n") {
        t.Fatalf("missing header in %q", out)
    }
    if !strings.Contains(out, "\nEditor:\n  s: save\n") {
        t.Fatalf("missing section in %q", out)
    }
    if strings.Contains(out, "hidden") {
        t.Fatalf("disabled binding should not be listed")
    }
}
