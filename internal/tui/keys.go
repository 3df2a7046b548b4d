package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"modebar/internal/toolbar"
	"modebar/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Up, Down, Left, Right key.Binding
	ZoomIn, ZoomOut       key.Binding
	Place                 key.Binding
	Escape                key.Binding
	Save                  key.Binding
	Notes                 key.Binding
	Picker                key.Binding
	Favorite              key.Binding
	Yank                  key.Binding
	Trace                 key.Binding
	Write                 key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan north")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan south")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan west")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan east")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Place:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space/p", "place node")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to browse")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save on/off")),
		Notes:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes layer on/off")),
		Picker:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite presets")),
		Favorite: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle favorite")),
		Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy button id")),
		Trace:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "map/trace")),
		Write:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write config")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// sections groups the bindings for the help overlay.
func (k keyMap) sections(bar toolbar.Model) []helpoverlay.Section {
	tk := bar.KeyMap()
	return []helpoverlay.Section{
		{Title: "Map", Bindings: []key.Binding{k.Up, k.Down, k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Notes}},
		{Title: "Editor", Bindings: []key.Binding{k.Place, k.Escape, k.Save}},
		{Title: "Toolbar", Bindings: append([]key.Binding{tk.Next, tk.Prev, tk.Press, k.Yank}, bar.Shortcuts()...)},
		{Title: "Presets", Bindings: []key.Binding{k.Picker, k.Favorite}},
		{Title: "View", Bindings: []key.Binding{k.Trace, k.Write, k.Help, k.Quit}},
	}
}
