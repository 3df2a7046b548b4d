package toolbar

import "modebar/internal/mode"

// IsEnabled reports whether m can be entered given the editor state.
//
// Rules:
//   - nothing is enabled while no mode is entered or the editor is saving.
//   - add-note needs the notes layer shown and notes editable.
//   - every other mode needs map data to be editable.
func IsEnabled(m mode.Mode, st State) bool {
	cur := st.CurrentMode()
	if cur.IsZero() || cur.ID == mode.IDSave {
		return false
	}
	if m.ID == mode.IDAddNote {
		return st.NotesLayerEnabled() && st.MapNotesEditable()
	}
	return st.IsDataEditable()
}
