package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/layout"
	"github.com/san-kum/rodopios/internal/sink"
)

const (
	highlightColor = "#FFFF00"
	defaultColor   = "#00FF00"
	ringColor      = "#005000"
	innerColor     = "#008000"
	labelColor     = "#FFFFFF"
)

// WheelSVG renders the symbol wheel with the highlights and centre label of
// snap. Every slot gets line-sN, text-sN and dot-sN elements so a browser
// sink can address them by id.
func WheelSVG(w layout.Wheel, a *alphabet.Alphabet, snap sink.Snapshot) string {
	size := w.Center.X * 2
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="1"/>
`, w.Center.X, w.Center.Y, w.OuterRing(), ringColor))
	sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="#050505" stroke="%s" stroke-width="1"/>
`, w.Center.X, w.Center.Y, w.SpokeStart, innerColor))

	symbols := a.Symbols()
	for _, sp := range w.Spokes(len(symbols)) {
		id := alphabet.SlotID(sp.Slot)
		color, width := defaultColor, "1.5"
		if snap.Active(id) {
			color, width = highlightColor, "3"
		}
		el := id.ElementID()

		sb.WriteString(fmt.Sprintf(`<line id="line-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%s"/>
`, el, sp.Start.X, sp.Start.Y, sp.End.X, sp.End.Y, color, width))
		sb.WriteString(fmt.Sprintf(`<text id="text-%s" x="%.2f" y="%.2f" fill="%s" font-size="11" text-anchor="middle" dominant-baseline="middle">%s</text>
`, el, sp.Label.X, sp.Label.Y, color, html.EscapeString(symbols[sp.Slot])))
		sb.WriteString(fmt.Sprintf(`<circle id="dot-%s" cx="%.2f" cy="%.2f" r="2" fill="%s"/>
`, el, sp.End.X, sp.End.Y, color))
	}

	text, fill, fontSize := snap.Label, labelColor, "24"
	if text == "" {
		text, fill, fontSize = "N/A", innerColor, "12"
	}
	sb.WriteString(fmt.Sprintf(`<text id="center-text-display" x="%.2f" y="%.2f" fill="%s" font-size="%s" text-anchor="middle" dominant-baseline="central" font-weight="bold">%s</text>
`, w.Center.X, w.Center.Y, fill, fontSize, html.EscapeString(text)))

	sb.WriteString("</svg>")
	return sb.String()
}
