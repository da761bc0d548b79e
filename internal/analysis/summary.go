package analysis

import (
	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/trace"
)

// Summary aggregates a trace against an alphabet.
type Summary struct {
	Steps      int
	Resolved   int
	Unresolved int
	// Histogram counts resolved steps per slot.
	Histogram []int
	Distinct  int

	MeanRodopios float64
	MaxRodopios  int
	// MaxAt is the ordinal of the first step reaching MaxRodopios.
	MaxAt int
}

// Summarize walks tr once. Rodopios comes from the step metadata when the
// producer recorded it, otherwise from the distance between consecutive
// resolved slots.
func Summarize(tr trace.Trace, a *alphabet.Alphabet) Summary {
	s := Summary{
		Steps:     len(tr),
		Histogram: make([]int, a.Len()),
	}

	rods := Rodopios(tr, a)
	total := 0
	for i, step := range tr {
		slot, ok := a.Locate(step.Symbol)
		if !ok {
			s.Unresolved++
			continue
		}
		s.Resolved++
		if s.Histogram[slot] == 0 {
			s.Distinct++
		}
		s.Histogram[slot]++

		r := int(rods[i])
		total += r
		if r > s.MaxRodopios {
			s.MaxRodopios = r
			s.MaxAt = step.Ordinal
		}
	}
	if len(tr) > 0 {
		s.MeanRodopios = float64(total) / float64(len(tr))
	}
	return s
}

// SlotSeries returns the slot index of every step, -1 where the symbol does
// not resolve.
func SlotSeries(tr trace.Trace, a *alphabet.Alphabet) []float64 {
	out := make([]float64, len(tr))
	for i, step := range tr {
		slot, _ := a.Locate(step.Symbol)
		out[i] = float64(slot)
	}
	return out
}

// Rodopios returns the per-step rotation series.
func Rodopios(tr trace.Trace, a *alphabet.Alphabet) []float64 {
	out := make([]float64, len(tr))
	prev := alphabet.NoSlot
	for i, step := range tr {
		slot, ok := a.Locate(step.Symbol)
		switch {
		case step.Meta.Rodopios != nil:
			out[i] = float64(*step.Meta.Rodopios)
		case ok && prev.Valid():
			out[i] = float64(alphabet.Rodopios(prev, slot, a.Len()))
		}
		if ok {
			prev = slot
		}
	}
	return out
}

// TopSlots returns up to n slots ordered by descending count, ties broken
// by slot order. Slots never visited are omitted.
func (s Summary) TopSlots(n int) []alphabet.SlotID {
	out := make([]alphabet.SlotID, 0, n)
	used := make([]bool, len(s.Histogram))
	for len(out) < n {
		best := alphabet.NoSlot
		for i, c := range s.Histogram {
			if used[i] || c == 0 {
				continue
			}
			if !best.Valid() || c > s.Histogram[best] {
				best = alphabet.SlotID(i)
			}
		}
		if !best.Valid() {
			break
		}
		used[best] = true
		out = append(out, best)
	}
	return out
}
