package tagchips

import (
    "testing"

    "modebar/internal/tui/state"
)

func TestPlainChips(t *testing.T) {
    tags := []state.Tag{{Kind: state.DRAWING}, {Kind: state.OVERFLOW, Value: 4}, {Kind: state.ZOOM, Value: 16}}
    out := View(tags, true)
    if out != "[Drawing] [Overflow +4] [z16]" {
        t.Fatalf("unexpected chips %q", out)
    }
    if View(nil, true) != "" {
        t.Fatalf("expected empty output for no tags")
    }
}
