package state

// TagKind enumerates the editor status chips.
type TagKind int

const (
    // Stable ordering for display: Phase, Editable, Notes Layer, Notes Editable, Overflow, Zoom
    DRAWING TagKind = iota
    SAVING
    EDITABLE
    READ_ONLY
    NOTES_LAYER
    NOTES_EDITABLE
    OVERFLOW
    ZOOM
)

// Tag represents a single status chip. Value is used for numeric counters
// (overflowing columns, zoom level). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
