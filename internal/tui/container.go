package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modebar/internal/toolbar"
)

// classSet is the editor container's class list. The toolbar toggles its
// mode-<id> markers here; the status bar shows them.
type classSet map[string]bool

func (c classSet) Classed(class string, on bool) {
	if on {
		c[class] = true
		return
	}
	delete(c, class)
}

func (c classSet) sorted() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// barLayout marks the toolbar row for re-measurement when the reconciler
// reports a button count change.
type barLayout struct {
	dirty  bool
	checks int
}

func (l *barLayout) CheckOverflow(selector string) {
	if selector != toolbar.BarSelector {
		return
	}
	l.dirty = true
	l.checks++
}

// measure returns how many columns row exceeds width by.
func measure(row string, width int) int {
	if width <= 0 {
		return 0
	}
	if over := lipgloss.Width(row) - width; over > 0 {
		return over
	}
	return 0
}

// traceText is the plain-text form of the button row compared by the trace
// pane, one button per line.
func traceText(buttons []toolbar.Button) string {
	var b strings.Builder
	for _, btn := range buttons {
		flags := ""
		if btn.Active {
			flags += " active"
		}
		if btn.Disabled {
			flags += " disabled"
		}
		fmt.Fprintf(&b, "%s %s%s\n", btn.Icon, btn.Mode.ID, flags)
	}
	return b.String()
}
