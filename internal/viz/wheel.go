package viz

import (
	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
	"github.com/san-kum/rodopios/internal/layout"
	"github.com/san-kum/rodopios/internal/sink"
)

const (
	wheelCols = 60
	wheelRows = 30
)

// WheelView draws the symbol wheel for a board snapshot onto a Braille
// canvas.
type WheelView struct {
	alpha  *alphabet.Alphabet
	canvas *Canvas
	wheel  layout.Wheel
	spokes []layout.Spoke
}

// NewWheelView sizes the wheel to fit a canvas of cols by rows cells.
func NewWheelView(a *alphabet.Alphabet, cols, rows int) *WheelView {
	if cols <= 0 {
		cols = wheelCols
	}
	if rows <= 0 {
		rows = wheelRows
	}
	size := float64(cols * 2)
	if h := float64(rows * 4); h < size {
		size = h
	}
	w := layout.NewWheel(size)
	// Centre the square wheel on a possibly wider canvas.
	w.Center = layout.Point{X: float64(cols), Y: float64(rows * 2)}

	return &WheelView{
		alpha:  a,
		canvas: NewCanvas(cols, rows),
		wheel:  w,
		spokes: w.Spokes(a.Len()),
	}
}

// Draw redraws the canvas from snap.
func (v *WheelView) Draw(snap sink.Snapshot) *Canvas {
	c := v.canvas
	c.Clear()
	cx, cy := v.wheel.Center.X, v.wheel.Center.Y

	c.Pen(InkRing)
	c.DrawCircle(cx, cy, v.wheel.OuterRing())
	c.DrawCircle(cx, cy, v.wheel.SpokeStart)

	// Labels first so spokes never overwrite them.
	for _, sp := range v.spokes {
		id := alphabet.SlotID(sp.Slot)
		sym, _ := v.alpha.Symbol(id)
		c.Pen(InkLabel)
		if snap.Active(id) {
			c.Pen(InkHighlight)
		}
		c.Text(round(sp.Label.X), round(sp.Label.Y), sym)
	}

	label := snap.Label
	if label == "" {
		label = animator.NeutralLabel
	}
	c.Pen(InkCenter)
	c.Text(round(cx), round(cy), label)

	for _, sp := range v.spokes {
		if snap.Active(alphabet.SlotID(sp.Slot)) {
			continue
		}
		c.Pen(InkSpoke)
		c.DrawLine(round(sp.Start.X), round(sp.Start.Y), round(sp.End.X), round(sp.End.Y))
	}
	// Highlighted spokes last so they win shared cells.
	for _, sp := range v.spokes {
		if !snap.Active(alphabet.SlotID(sp.Slot)) {
			continue
		}
		c.Pen(InkHighlight)
		c.DrawLine(round(sp.Start.X), round(sp.Start.Y), round(sp.End.X), round(sp.End.Y))
		c.Dot(round(sp.End.X), round(sp.End.Y), 1)
	}
	return c
}

// Render draws snap and colours it with theme.
func (v *WheelView) Render(snap sink.Snapshot, theme Theme) string {
	return v.Draw(snap).Render(theme.Paint())
}
