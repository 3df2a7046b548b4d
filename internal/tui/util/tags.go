package util

import (
    "math"

    "modebar/internal/editor"
    "modebar/internal/tui/state"
)

// Flags is the editor state the status chips summarize.
type Flags struct {
    Phase         editor.PhaseKind
    ReadOnly      bool
    DataEditable  bool
    NotesLayer    bool
    NotesEditable bool
    Overflow      int // columns the toolbar row exceeds the terminal by
    Zoom          float64
}

// ComputeTags calculates the status chips for the editor state.
//
// The returned slice preserves a stable order:
//   Drawing|Saving, Editable|Read-only, Notes Layer, Notes Editable, Overflow, Zoom
//
// Rules:
// - Drawing and Saving are mutually exclusive and follow the editor phase.
// - Read-only replaces Editable; neither shows when data is merely zoomed out.
// - Notes Editable only shows while the notes layer is on.
// - Overflow carries the number of hidden columns.
// - Zoom is always included (floored).
func ComputeTags(f Flags) []state.Tag {
    tags := make([]state.Tag, 0, 6)

    // 1) Phase
    switch f.Phase {
    case editor.Drawing:
        tags = append(tags, state.Tag{Kind: state.DRAWING})
    case editor.Saving:
        tags = append(tags, state.Tag{Kind: state.SAVING})
    }

    // 2) Editability
    if f.ReadOnly {
        tags = append(tags, state.Tag{Kind: state.READ_ONLY})
    } else if f.DataEditable {
        tags = append(tags, state.Tag{Kind: state.EDITABLE})
    }

    // 3) Notes
    if f.NotesLayer {
        tags = append(tags, state.Tag{Kind: state.NOTES_LAYER})
        if f.NotesEditable {
            tags = append(tags, state.Tag{Kind: state.NOTES_EDITABLE})
        }
    }

    // 4) Overflow (+N)
    if f.Overflow > 0 {
        tags = append(tags, state.Tag{Kind: state.OVERFLOW, Value: f.Overflow})
    }

    // 5) Zoom
    tags = append(tags, state.Tag{Kind: state.ZOOM, Value: int(math.Floor(f.Zoom))})

    return tags
}
