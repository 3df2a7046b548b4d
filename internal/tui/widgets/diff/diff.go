package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
    delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint   = lipgloss.NewStyle().Faint(true)
)

// TraceView renders the toolbar before and after the last reconciliation
// pass as a unified diff with character-level highlights.
type TraceView struct {
    NoColor bool
}

func NewTraceView(noColor bool) TraceView { return TraceView{NoColor: noColor} }

type span struct {
    kind dmp.Operation
    text string
}

// View diffs before against after line by line. Changed line pairs get
// intraline spans; with NoColor those are marked [-del-] and {+ins+}.
func (v TraceView) View(before, after string) string {
    if before == after {
        return "No changes\n"
    }
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(withNewline(before), withNewline(after))
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

    var sb strings.Builder
    for i := 0; i < len(diffs); i++ {
        df := diffs[i]
        switch df.Type {
        case dmp.DiffEqual:
            for _, l := range splitLines(df.Text) {
                sb.WriteString("  " + v.style(faint, l) + "\n")
            }
        case dmp.DiffDelete:
            del := splitLines(df.Text)
            var ins []string
            if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
                ins = splitLines(diffs[i+1].Text)
                i++
            }
            v.writePairs(&sb, d, del, ins)
        case dmp.DiffInsert:
            v.writePairs(&sb, d, nil, splitLines(df.Text))
        }
    }
    return sb.String()
}

func (v TraceView) writePairs(sb *strings.Builder, d *dmp.DiffMatchPatch, del, ins []string) {
    n := len(del)
    if len(ins) > n {
        n = len(ins)
    }
    for i := 0; i < n; i++ {
        switch {
        case i < len(del) && i < len(ins):
            diffs := d.DiffCleanupSemantic(d.DiffMain(del[i], ins[i], false))
            sb.WriteString(v.style(delLine, "- ") + v.spans(diffs, dmp.DiffDelete) + "\n")
            sb.WriteString(v.style(addLine, "+ ") + v.spans(diffs, dmp.DiffInsert) + "\n")
        case i < len(del):
            sb.WriteString(v.style(delLine, "- "+del[i]) + "\n")
        default:
            sb.WriteString(v.style(addLine, "+ "+ins[i]) + "\n")
        }
    }
}

// spans renders one side of a character diff: the equal runs plus the
// runs of kind.
func (v TraceView) spans(diffs []dmp.Diff, kind dmp.Operation) string {
    line, char := addLine, addChar
    openMark, closeMark := "{+", "+}"
    if kind == dmp.DiffDelete {
        line, char = delLine, delChar
        openMark, closeMark = "[-", "-]"
    }
    var b strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffEqual:
            b.WriteString(v.style(line, df.Text))
        case kind:
            if v.NoColor {
                b.WriteString(openMark + df.Text + closeMark)
            } else {
                b.WriteString(char.Render(df.Text))
            }
        }
    }
    return b.String()
}

func (v TraceView) style(s lipgloss.Style, text string) string {
    if v.NoColor {
        return text
    }
    return s.Render(text)
}

func splitLines(s string) []string {
    return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// withNewline terminates the last line so it compares equal to the same
// line in the middle of the other text.
func withNewline(s string) string {
    if strings.HasSuffix(s, "\n") {
        return s
    }
    return s + "\n"
}
