package state

import "unicode/utf8"

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// ToggleTrace switches between the map and the reconcile trace.
func ToggleTrace(s UIState) UIState {
    if s.Pane == MapPane {
        s.Pane = TracePane
        s.Notice = "[TRACE]"
    } else {
        s.Pane = MapPane
        s.Notice = "[MAP]"
    }
    return s
}

// Resize records the terminal size.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    return s
}

// OpenPicker shows the preset picker with an empty query.
func OpenPicker(s UIState) UIState {
    s.Picking = true
    s.PickerQuery = ""
    s.PickerCursor = 0
    s.PickerGeom = 0
    return s
}

func ClosePicker(s UIState) UIState {
    s.Picking = false
    return s
}

// TypeQuery appends r to the picker query and resets the selection.
func TypeQuery(s UIState, r rune) UIState {
    s.PickerQuery += string(r)
    s.PickerCursor = 0
    s.PickerGeom = 0
    return s
}

// Backspace drops the last rune of the picker query.
func Backspace(s UIState) UIState {
    if s.PickerQuery == "" {
        return s
    }
    _, size := utf8.DecodeLastRuneInString(s.PickerQuery)
    s.PickerQuery = s.PickerQuery[:len(s.PickerQuery)-size]
    s.PickerCursor = 0
    s.PickerGeom = 0
    return s
}

// MovePicker moves the picker cursor by delta, clamped to n results.
func MovePicker(s UIState, delta, n int) UIState {
    s.PickerCursor += delta
    if s.PickerCursor >= n {
        s.PickerCursor = n - 1
    }
    if s.PickerCursor < 0 {
        s.PickerCursor = 0
    }
    s.PickerGeom = 0
    return s
}

// CycleGeom steps through the n geometries of the selected preset.
func CycleGeom(s UIState, n int) UIState {
    if n <= 0 {
        s.PickerGeom = 0
        return s
    }
    s.PickerGeom = (s.PickerGeom + 1) % n
    return s
}

func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
