package layout

const (
	DefaultSize      = 320.0
	spokeEndFactor   = 0.4
	labelFactor      = 0.45
	spokeStartFactor = 0.2
	outerRingFactor  = 1.05
)

// Wheel describes a circular layout: a centre and independent radii for the
// start and end of each radial spoke and for the symbol label.
type Wheel struct {
	Center     Point
	SpokeStart float64
	SpokeEnd   float64
	Label      float64
}

// Spoke holds the three positions of one slot, all at the same angle.
type Spoke struct {
	Slot  int
	Angle float64
	Start Point
	End   Point
	Label Point
}

// NewWheel returns the default proportions for a square canvas of the given
// size: spokes end at 0.4*size, labels sit at 0.45*size and spokes start on
// an inner ring of 0.2 times the spoke length.
func NewWheel(size float64) Wheel {
	if size <= 0 {
		size = DefaultSize
	}
	end := size * spokeEndFactor
	return Wheel{
		Center:     Point{X: size / 2, Y: size / 2},
		SpokeStart: end * spokeStartFactor,
		SpokeEnd:   end,
		Label:      size * labelFactor,
	}
}

// OuterRing is the radius of the decorative border drawn around the spokes.
func (w Wheel) OuterRing() float64 { return w.SpokeEnd * outerRingFactor }

// PositionOf places slot on a circle of radius r around the wheel centre.
func (w Wheel) PositionOf(slot, total int, r float64) Point {
	return PositionOf(slot, total, r).Offset(w.Center)
}

// Spoke computes the geometry of one slot.
func (w Wheel) Spoke(slot, total int) Spoke {
	return Spoke{
		Slot:  slot,
		Angle: AngleOf(slot, total),
		Start: w.PositionOf(slot, total, w.SpokeStart),
		End:   w.PositionOf(slot, total, w.SpokeEnd),
		Label: w.PositionOf(slot, total, w.Label),
	}
}

// Spokes computes every slot of a wheel with total slots.
func (w Wheel) Spokes(total int) []Spoke {
	if total <= 0 {
		return nil
	}
	out := make([]Spoke, total)
	for i := range out {
		out[i] = w.Spoke(i, total)
	}
	return out
}
