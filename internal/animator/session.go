package animator

import (
	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/trace"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	Idle Phase = iota
	Running
	Finished
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether no further sink calls can happen.
func (p Phase) Terminal() bool { return p == Finished || p == Cancelled }

// Session is one run of an Animator over one trace. All fields are guarded
// by the owning Animator.
type Session struct {
	owner      *Animator
	id         uint64
	steps      trace.Trace
	alpha      *alphabet.Alphabet
	cursor     int
	last       alphabet.SlotID
	unresolved int
	timer      Handle
	phase      Phase
	done       chan struct{}
}

// Progress is a snapshot of a session passed to observers.
type Progress struct {
	Session  uint64
	Cursor   int
	Total    int
	Step     trace.Step
	Slot     alphabet.SlotID
	Resolved bool
	Phase    Phase
}

// Fraction returns the share of steps consumed, in [0,1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Cursor) / float64(p.Total)
}

func (s *Session) progressLocked(step trace.Step, slot alphabet.SlotID, resolved bool) Progress {
	if !resolved {
		slot = alphabet.NoSlot
	}
	return Progress{
		Session:  s.id,
		Cursor:   s.cursor,
		Total:    len(s.steps),
		Step:     step,
		Slot:     slot,
		Resolved: resolved,
		Phase:    s.phase,
	}
}

func (s *Session) ID() uint64 { return s.id }

func (s *Session) Phase() Phase {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return s.phase
}

// Cursor returns the number of steps consumed so far.
func (s *Session) Cursor() int {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return s.cursor
}

func (s *Session) Total() int { return len(s.steps) }

// LastSlot returns the slot currently highlighted by this session.
func (s *Session) LastSlot() alphabet.SlotID {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return s.last
}

// Done is closed when the session finishes or is cancelled.
func (s *Session) Done() <-chan struct{} { return s.done }

// Cancel stops this session. Cancelling a superseded session is a no-op.
func (s *Session) Cancel() {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	s.owner.cancelLocked(s)
}
