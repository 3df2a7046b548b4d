package util

import (
    "testing"

    "modebar/internal/editor"
    "modebar/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestPhaseTagsAreExclusive(t *testing.T) {
    tags := ComputeTags(Flags{Phase: editor.Drawing, DataEditable: true})
    if _, ok := findKind(tags, state.DRAWING); !ok {
        t.Fatalf("expected DRAWING tag present")
    }
    if _, ok := findKind(tags, state.SAVING); ok {
        t.Fatalf("did not expect SAVING tag while drawing")
    }

    tags = ComputeTags(Flags{Phase: editor.Saving})
    if _, ok := findKind(tags, state.SAVING); !ok {
        t.Fatalf("expected SAVING tag present")
    }
    if _, ok := findKind(tags, state.DRAWING); ok {
        t.Fatalf("did not expect DRAWING tag while saving")
    }

    tags = ComputeTags(Flags{Phase: editor.Browsing})
    if len(tags) != 1 || tags[0].Kind != state.ZOOM {
        t.Fatalf("expected only the zoom chip while browsing zoomed out, got %v", tags)
    }
}

func TestReadOnlyReplacesEditable(t *testing.T) {
    tags := ComputeTags(Flags{ReadOnly: true, DataEditable: true})
    if _, ok := findKind(tags, state.READ_ONLY); !ok {
        t.Fatalf("expected READ_ONLY tag present")
    }
    if _, ok := findKind(tags, state.EDITABLE); ok {
        t.Fatalf("did not expect EDITABLE with READ_ONLY")
    }
}

func TestNotesEditableNeedsLayer(t *testing.T) {
    tags := ComputeTags(Flags{NotesEditable: true})
    if _, ok := findKind(tags, state.NOTES_EDITABLE); ok {
        t.Fatalf("did not expect NOTES_EDITABLE without the layer")
    }
    tags = ComputeTags(Flags{NotesLayer: true, NotesEditable: true})
    if _, ok := findKind(tags, state.NOTES_EDITABLE); !ok {
        t.Fatalf("expected NOTES_EDITABLE with the layer on")
    }
}

func TestOverflowAndZoomCounters(t *testing.T) {
    tags := ComputeTags(Flags{Overflow: 7, Zoom: 15.6})
    if idx, ok := findKind(tags, state.OVERFLOW); !ok || tags[idx].Value != 7 {
        t.Fatalf("expected OVERFLOW with value 7")
    }
    if idx, ok := findKind(tags, state.ZOOM); !ok || tags[idx].Value != 15 {
        t.Fatalf("expected ZOOM floored to 15")
    }
}

func TestStableOrder(t *testing.T) {
    tags := ComputeTags(Flags{
        Phase:         editor.Drawing,
        DataEditable:  true,
        NotesLayer:    true,
        NotesEditable: true,
        Overflow:      2,
        Zoom:          17,
    })
    order := []state.TagKind{state.DRAWING, state.EDITABLE, state.NOTES_LAYER, state.NOTES_EDITABLE, state.OVERFLOW, state.ZOOM}
    if len(tags) != len(order) {
        t.Fatalf("expected %d tags, got %d", len(order), len(tags))
    }
    for i, k := range order {
        if tags[i].Kind != k {
            t.Fatalf("tag %d: expected kind %v, got %v", i, k, tags[i].Kind)
        }
    }
}
