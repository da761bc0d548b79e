package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/rodopios/internal/alphabet"
)

// Report is the input to Markdown.
type Report struct {
	Title   string
	Fields  [][2]string
	Summary Summary
	Top     int
}

// Markdown formats r as a markdown document.
func Markdown(r Report, a *alphabet.Alphabet) string {
	var b strings.Builder
	title := r.Title
	if title == "" {
		title = "Trace report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	for _, f := range r.Fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "- **%s**: `%s`\n", f[0], f[1])
	}
	if len(r.Fields) > 0 {
		b.WriteString("\n")
	}

	s := r.Summary
	b.WriteString("## Steps\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Steps | %d |\n", s.Steps)
	fmt.Fprintf(&b, "| Resolved | %d |\n", s.Resolved)
	fmt.Fprintf(&b, "| Unresolved | %d |\n", s.Unresolved)
	fmt.Fprintf(&b, "| Distinct slots | %d of %d |\n", s.Distinct, a.Len())
	fmt.Fprintf(&b, "| Mean rodopios | %.2f |\n", s.MeanRodopios)
	if s.MaxAt > 0 {
		fmt.Fprintf(&b, "| Max rodopios | %d (step %d) |\n", s.MaxRodopios, s.MaxAt)
	}

	top := r.Top
	if top <= 0 {
		top = 5
	}
	slots := s.TopSlots(top)
	if len(slots) == 0 {
		return b.String()
	}
	b.WriteString("\n## Most visited\n\n")
	b.WriteString("| Slot | Symbol | Angle | Visits |\n|---|---|---|---|\n")
	for _, id := range slots {
		sym, _ := a.Symbol(id)
		fmt.Fprintf(&b, "| %d | %s | %d° | %d |\n", id, sym, a.NumberToAngle(int(id)), s.Histogram[id])
	}
	return b.String()
}
