package viz

import (
	"sync"

	"github.com/san-kum/rodopios/internal/animator"
)

const historyCapacity = 256

// Tracker is an animator.Observer that keeps the latest progress and a
// rolling window of rotations for the UI to poll.
type Tracker struct {
	mu       sync.Mutex
	latest   animator.Progress
	has      bool
	finished bool
	rods     []float64
}

func NewTracker() *Tracker {
	return &Tracker{rods: make([]float64, 0, historyCapacity)}
}

func (t *Tracker) OnStep(p animator.Progress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest, t.has, t.finished = p, true, false

	r := 0.0
	if p.Step.Meta.Rodopios != nil {
		r = float64(*p.Step.Meta.Rodopios)
	}
	t.rods = append(t.rods, r)
	if len(t.rods) > historyCapacity {
		t.rods = t.rods[1:]
	}
}

func (t *Tracker) OnFinish(p animator.Progress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest, t.has, t.finished = p, true, true
}

// Latest returns the last progress report, if any.
func (t *Tracker) Latest() (animator.Progress, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest, t.has
}

// Rodopios returns a copy of the rotation window.
func (t *Tracker) Rodopios() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]float64, len(t.rods))
	copy(out, t.rods)
	return out
}

// Clear forgets everything, used when a run restarts from the top.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest, t.has, t.finished = animator.Progress{}, false, false
	t.rods = t.rods[:0]
}
