// Package layout computes the geometry of the symbol wheel.
//
// Slot 0 sits at the top of the circle and slots advance clockwise in
// screen coordinates (y grows downward), evenly spaced at 360/total
// degrees. Every function is pure.
package layout

import "math"

// Point is a position in screen coordinates.
type Point struct {
	X, Y float64
}

// AngleOf returns the local angle of slot in degrees, in [0,360).
// Out-of-range slots wrap.
func AngleOf(slot, total int) float64 {
	if total <= 0 {
		return 0
	}
	slot = ((slot % total) + total) % total
	return float64(slot) * 360 / float64(total)
}

// PositionOf places slot on a circle of the given radius centred on the
// origin. Local angle 0 corresponds to -90° in the math convention.
func PositionOf(slot, total int, radius float64) Point {
	if total <= 0 {
		return Point{}
	}
	return polar(AngleOf(slot, total), radius)
}

func polar(angleDeg, r float64) Point {
	rad := (angleDeg - 90) * math.Pi / 180
	return Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

// Offset returns p translated by c.
func (p Point) Offset(c Point) Point {
	return Point{X: p.X + c.X, Y: p.Y + c.Y}
}

// Scale returns p with both axes multiplied independently. Terminal cells
// are not square, so renderers stretch one axis.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}
