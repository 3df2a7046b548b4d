package mode

// AddPoint builds the point-adding mode. A non-nil base (a favorite preset
// mode) replaces the default identity; only the kind is forced.
func AddPoint(tr Translator, base *Mode) Mode {
	if base != nil {
		m := *base
		m.Kind = KindAddPoint
		return m
	}
	return Mode{
		ID:          IDAddPoint,
		Button:      "point",
		Title:       tr.T("modes.add_point.title", nil),
		Description: tr.T("modes.add_point.description", nil),
		Key:         tr.T("modes.add_point.key", nil),
		Kind:        KindAddPoint,
	}
}

// AddLine builds the line-adding mode.
func AddLine(tr Translator, base *Mode) Mode {
	if base != nil {
		m := *base
		m.Kind = KindAddLine
		return m
	}
	return Mode{
		ID:          IDAddLine,
		Button:      "line",
		Title:       tr.T("modes.add_line.title", nil),
		Description: tr.T("modes.add_line.description", nil),
		Key:         tr.T("modes.add_line.key", nil),
		Kind:        KindAddLine,
	}
}

// AddArea builds the area-adding mode.
func AddArea(tr Translator, base *Mode) Mode {
	if base != nil {
		m := *base
		m.Kind = KindAddArea
		return m
	}
	return Mode{
		ID:          IDAddArea,
		Button:      "area",
		Title:       tr.T("modes.add_area.title", nil),
		Description: tr.T("modes.add_area.description", nil),
		Key:         tr.T("modes.add_area.key", nil),
		Kind:        KindAddArea,
	}
}

// AddNote builds the note-adding mode.
func AddNote(tr Translator) Mode {
	return Mode{
		ID:          IDAddNote,
		Button:      "note",
		Title:       tr.T("modes.add_note.title", nil),
		Description: tr.T("modes.add_note.description", nil),
		Key:         tr.T("modes.add_note.key", nil),
		Kind:        KindAddNote,
	}
}

// Builtins returns the toolbar's fixed modes in display order. The note
// mode is last so callers can drop it by slicing when notes are hidden.
func Builtins(tr Translator) []Mode {
	return []Mode{
		AddPoint(tr, nil),
		AddLine(tr, nil),
		AddArea(tr, nil),
		AddNote(tr),
	}
}

func Browse(tr Translator) Mode {
	return Mode{ID: IDBrowse, Button: "browse", Title: tr.T("modes.browse.title", nil), Kind: KindBrowse}
}

func Select(tr Translator) Mode {
	return Mode{ID: IDSelect, Button: "browse", Title: tr.T("modes.select.title", nil), Kind: KindSelect}
}

func Save(tr Translator) Mode {
	return Mode{ID: IDSave, Button: "save", Title: tr.T("modes.save.title", nil), Kind: KindSave}
}

// DrawLine is entered after the first node of a line has been placed.
// from carries the button identity of the add mode that started it.
func DrawLine(tr Translator, from Mode) Mode {
	return Mode{ID: IDDrawLine, Button: from.Button, Title: tr.T("modes.draw_line.title", nil), Kind: KindDrawLine}
}

func DrawArea(tr Translator, from Mode) Mode {
	return Mode{ID: IDDrawArea, Button: from.Button, Title: tr.T("modes.draw_area.title", nil), Kind: KindDrawArea}
}
