// Package metrics counts what the animator did.
package metrics

import (
	"sync"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
)

// Counter is an animator.Observer tallying ticks across sessions. It is
// safe to read while an animation is running.
type Counter struct {
	mu       sync.Mutex
	slots    int
	sessions map[uint64]alphabet.SlotID
	c        Counts
}

// Counts is a point-in-time copy of a Counter.
type Counts struct {
	Sessions   int
	Steps      int
	Resolved   int
	Unresolved int
	Finished   int
	// Travel is the summed clockwise distance between consecutive
	// resolved slots of the same session.
	Travel int
}

// NewCounter returns a counter for a wheel of slots positions.
func NewCounter(slots int) *Counter {
	return &Counter{
		slots:    slots,
		sessions: make(map[uint64]alphabet.SlotID),
	}
}

func (c *Counter) Name() string { return "sessions" }

func (c *Counter) OnStep(p animator.Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, seen := c.sessions[p.Session]
	if !seen {
		c.c.Sessions++
		prev = alphabet.NoSlot
	}
	c.c.Steps++
	if !p.Resolved {
		c.c.Unresolved++
		c.sessions[p.Session] = alphabet.NoSlot
		return
	}
	c.c.Resolved++
	if prev.Valid() {
		c.c.Travel += alphabet.Rodopios(prev, p.Slot, c.slots)
	}
	c.sessions[p.Session] = p.Slot
}

func (c *Counter) OnFinish(p animator.Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, seen := c.sessions[p.Session]; !seen {
		c.c.Sessions++
	}
	c.c.Finished++
	delete(c.sessions, p.Session)
}

func (c *Counter) Counts() Counts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c
}

// Values flattens the counts for tabular output.
func (c *Counter) Values() map[string]float64 {
	n := c.Counts()
	return map[string]float64{
		"sessions":   float64(n.Sessions),
		"steps":      float64(n.Steps),
		"resolved":   float64(n.Resolved),
		"unresolved": float64(n.Unresolved),
		"finished":   float64(n.Finished),
		"travel":     float64(n.Travel),
	}
}

func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.c = Counts{}
	c.sessions = make(map[uint64]alphabet.SlotID)
}
