package analysis

import (
	"strings"
	"testing"

	"github.com/san-kum/rodopios/internal/alphabet"
)

func TestMarkdown(t *testing.T) {
	a := alphabet.Default()
	md := Markdown(Report{
		Title:   "wallet",
		Fields:  [][2]string{{"Address", "αβ"}, {"Empty", ""}},
		Summary: Summarize(steps("β", "β", "γ", ""), a),
		Top:     1,
	}, a)

	for _, want := range []string{
		"# wallet",
		"- **Address**: `αβ`",
		"| Unresolved | 1 |",
		"| Distinct slots | 2 of 40 |",
		"| 1 | β | 9° | 2 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Empty") {
		t.Error("empty fields should be skipped")
	}
	if strings.Contains(md, "| 2 | γ |") {
		t.Error("top limit not applied")
	}
}

func TestMarkdownNoResolved(t *testing.T) {
	a := alphabet.Default()
	md := Markdown(Report{Summary: Summarize(steps(""), a)}, a)
	if !strings.HasPrefix(md, "# Trace report") {
		t.Error("expected default title")
	}
	if strings.Contains(md, "Most visited") {
		t.Error("no visited slots to list")
	}
}
