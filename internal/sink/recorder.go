package sink

import (
	"fmt"
	"sync"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
)

type Op int

const (
	OpHighlight Op = iota
	OpLabel
)

// Call is one recorded sink command.
type Call struct {
	Op     Op
	Slot   alphabet.SlotID
	Active bool
	Label  string
}

func Highlight(slot alphabet.SlotID, active bool) Call {
	return Call{Op: OpHighlight, Slot: slot, Active: active}
}

func Label(text string) Call {
	return Call{Op: OpLabel, Slot: alphabet.NoSlot, Label: text}
}

func (c Call) String() string {
	if c.Op == OpLabel {
		return fmt.Sprintf("label(%q)", c.Label)
	}
	return fmt.Sprintf("highlight(%s, %t)", c.Slot, c.Active)
}

// Recorder stores calls in the order received.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ animator.Sink = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetHighlight(slot alphabet.SlotID, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Highlight(slot, active))
}

func (r *Recorder) SetCenterLabel(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Label(text))
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of calls recorded.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Count returns the number of highlight calls with the given flag.
func (r *Recorder) Count(active bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == OpHighlight && c.Active == active {
			n++
		}
	}
	return n
}

// Labels returns every label written, in order.
func (r *Recorder) Labels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.calls {
		if c.Op == OpLabel {
			out = append(out, c.Label)
		}
	}
	return out
}

// Clear drops every recorded call.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
