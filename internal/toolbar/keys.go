package toolbar

import (
	"github.com/charmbracelet/bubbles/key"

	"modebar/internal/mode"
)

// KeyMap holds the toolbar's focus bindings. Mode shortcuts are bound
// separately from the built-in modes' keys.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next button")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous button")),
		Press: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press button")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Press}}
}

// shortcutBindings binds each built-in mode that has a key.
func shortcutBindings(modes []mode.Mode) []key.Binding {
	var out []key.Binding
	for _, m := range modes {
		if m.Key == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(m.Key), key.WithHelp(m.Key, m.Title)))
	}
	return out
}
