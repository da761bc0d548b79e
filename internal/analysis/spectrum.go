package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/trace"
)

// Spectrum describes how regularly the highlight circles the wheel.
type Spectrum struct {
	// Magnitudes holds |X_k|/n for every bin.
	Magnitudes []float64
	// Peak is the strongest non-constant bin as a signed frequency:
	// positive turns with the slot order, negative against it. Zero when
	// the trace has fewer than two resolved steps.
	Peak     int
	Strength float64
}

// Period is the number of steps per revolution at the peak, or 0.
func (s Spectrum) Period() float64 {
	if s.Peak == 0 {
		return 0
	}
	return float64(len(s.Magnitudes)) / math.Abs(float64(s.Peak))
}

// CircularSpectrum transforms the highlighted position, taken as a point on
// the unit circle, over the steps of tr. Unresolved steps contribute zero.
func CircularSpectrum(tr trace.Trace, a *alphabet.Alphabet) Spectrum {
	n := len(tr)
	if n == 0 || a.Len() == 0 {
		return Spectrum{}
	}

	x := make([]complex128, n)
	resolved := 0
	for i, step := range tr {
		slot, ok := a.Locate(step.Symbol)
		if !ok {
			continue
		}
		resolved++
		theta := 2 * math.Pi * float64(slot) / float64(a.Len())
		x[i] = cmplx.Rect(1, theta)
	}

	sp := Spectrum{Magnitudes: make([]float64, n)}
	for k, v := range fft.FFT(x) {
		sp.Magnitudes[k] = cmplx.Abs(v) / float64(n)
	}
	if resolved < 2 {
		return sp
	}

	best := 0
	for k := 1; k < n; k++ {
		if sp.Magnitudes[k] > sp.Magnitudes[best] || best == 0 {
			best = k
		}
	}
	if best == 0 {
		return sp
	}
	sp.Strength = sp.Magnitudes[best]
	// Bins above n/2 alias backward motion.
	if best > n/2 {
		sp.Peak = best - n
	} else {
		sp.Peak = best
	}
	return sp
}
