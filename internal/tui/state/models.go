package state

// Pane selects what fills the main area below the toolbar.
type Pane int

const (
    MapPane Pane = iota
    TracePane
)

// UIState holds cross-widget UI state used by the status bar, map pane,
// trace and picker.
type UIState struct {
    // Panes & overlays
    Pane     Pane
    ShowHelp bool

    // Layout
    Width  int
    Height int

    // Preset picker
    Picking      bool
    PickerQuery  string
    PickerCursor int
    PickerGeom   int // index into the selected preset's geometries

    // Notices and ephemeral messages
    Notice string
}
