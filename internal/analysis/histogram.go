package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/rodopios/internal/alphabet"
)

// HistogramToASCII draws one bar per visited slot, scaled to width.
func HistogramToASCII(s Summary, a *alphabet.Alphabet, width int) string {
	if s.Resolved == 0 {
		return "No resolved steps"
	}
	if width < 1 {
		width = 1
	}

	peak := 0
	for _, c := range s.Histogram {
		if c > peak {
			peak = c
		}
	}

	var sb strings.Builder
	for i, c := range s.Histogram {
		if c == 0 {
			continue
		}
		sym, _ := a.Symbol(alphabet.SlotID(i))
		bar := c * width / peak
		if bar == 0 {
			bar = 1
		}
		sb.WriteString(fmt.Sprintf("%2d %s %s %d\n", i, sym, strings.Repeat("█", bar), c))
	}
	return sb.String()
}
