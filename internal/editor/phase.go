package editor

import "modebar/internal/mode"

// PhaseKind is the coarse lifecycle state of the editor.
type PhaseKind int

const (
	Browsing PhaseKind = iota
	Drawing
	Saving
)

func (k PhaseKind) String() string {
	switch k {
	case Drawing:
		return "drawing"
	case Saving:
		return "saving"
	default:
		return "browsing"
	}
}

// Phase is the editor lifecycle state. ModeID is set while Drawing.
type Phase struct {
	Kind   PhaseKind
	ModeID string
}

// PhaseOf classifies a mode into the lifecycle state it puts the editor in.
func PhaseOf(m mode.Mode) Phase {
	switch m.Kind {
	case mode.KindSave:
		return Phase{Kind: Saving}
	case mode.KindAddPoint, mode.KindAddLine, mode.KindAddArea, mode.KindAddNote,
		mode.KindDrawLine, mode.KindDrawArea:
		return Phase{Kind: Drawing, ModeID: m.ID}
	default:
		return Phase{Kind: Browsing}
	}
}

func (p Phase) String() string {
	if p.Kind == Drawing {
		return "drawing(" + p.ModeID + ")"
	}
	return p.Kind.String()
}
