package animator

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/trace"
)

// DefaultInterval is the delay between two ticks.
const DefaultInterval = 75 * time.Millisecond

// Animator owns at most one live Session and the timer that drives it.
type Animator struct {
	mu       sync.Mutex
	sink     Sink
	sched    Scheduler
	interval time.Duration
	observer Observer
	logger   *zap.Logger
	current  *Session
	nextID   uint64
}

type Option func(*Animator)

// WithInterval sets the tick interval. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(a *Animator) {
		if s != nil {
			a.sched = s
		}
	}
}

func WithObserver(o Observer) Option {
	return func(a *Animator) { a.observer = o }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an idle Animator writing to sink.
func New(sink Sink, opts ...Option) *Animator {
	a := &Animator{
		sink:     sink,
		sched:    TimerScheduler{},
		interval: DefaultInterval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Interval returns the configured tick interval.
func (a *Animator) Interval() time.Duration { return a.interval }

// Start cancels any live session, resets the sink and begins animating tr
// over alpha. An empty trace or alphabet finishes immediately with the
// neutral label and no highlight.
func (a *Animator) Start(tr trace.Trace, alpha *alphabet.Alphabet) *Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		a.cancelLocked(a.current)
	}

	a.nextID++
	s := &Session{
		owner: a,
		id:    a.nextID,
		steps: tr.Clone(),
		alpha: alpha,
		last:  alphabet.NoSlot,
		phase: Running,
		done:  make(chan struct{}),
	}
	a.current = s

	if r, ok := a.sink.(Resetter); ok {
		r.Reset()
	}

	a.logger.Debug("session started",
		zap.Uint64("session", s.id),
		zap.Int("steps", len(s.steps)),
		zap.Int("slots", alpha.Len()))

	if len(s.steps) == 0 || alpha.Len() == 0 {
		a.sink.SetCenterLabel(NeutralLabel)
		a.finishLocked(s)
		return s
	}

	s.timer = a.sched.AfterFunc(0, func() { a.tick(s) })
	return s
}

// Cancel stops the live session, if any. It is a no-op on a session that
// is already cancelled and never calls the sink.
func (a *Animator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != nil {
		a.cancelLocked(a.current)
	}
}

// Release cancels the live session and detaches it, returning the Animator
// to Idle. Used when the consuming view is torn down.
func (a *Animator) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != nil {
		a.cancelLocked(a.current)
		a.current = nil
	}
}

// Phase reports the phase of the current session, or Idle.
func (a *Animator) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return Idle
	}
	return a.current.phase
}

// Current returns the session started last, or nil when idle.
func (a *Animator) Current() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *Animator) tick(s *Session) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// A superseded or cancelled session may still have a timer that fired
	// before Stop; it must not touch the sink.
	if a.current != s || s.phase != Running {
		return
	}
	s.timer = nil

	step := s.steps[s.cursor]
	if s.last.Valid() {
		a.sink.SetHighlight(s.last, false)
	}

	slot, ok := s.alpha.Locate(step.Symbol)
	if ok {
		a.sink.SetHighlight(slot, true)
		a.sink.SetCenterLabel(step.Symbol)
		s.last = slot
	} else {
		a.sink.SetCenterLabel(UnresolvedLabel)
		s.last = alphabet.NoSlot
		s.unresolved++
		a.logger.Debug("unresolved symbol",
			zap.Uint64("session", s.id),
			zap.Int("ordinal", step.Ordinal),
			zap.String("symbol", step.Symbol))
	}
	s.cursor++

	if a.observer != nil {
		a.observer.OnStep(s.progressLocked(step, slot, ok))
	}

	if s.cursor >= len(s.steps) {
		a.finishLocked(s)
		return
	}
	s.timer = a.sched.AfterFunc(a.interval, func() { a.tick(s) })
}

func (a *Animator) finishLocked(s *Session) {
	s.phase = Finished
	close(s.done)

	a.logger.Debug("session finished",
		zap.Uint64("session", s.id),
		zap.Int("steps", len(s.steps)),
		zap.Int("unresolved", s.unresolved))

	if a.observer != nil {
		p := s.progressLocked(trace.Step{}, s.last, s.last.Valid())
		if last, ok := s.steps.Last(); ok {
			p.Step = last
		}
		a.observer.OnFinish(p)
	}
}

func (a *Animator) cancelLocked(s *Session) {
	switch s.phase {
	case Running:
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.phase = Cancelled
		close(s.done)
		a.logger.Debug("session cancelled",
			zap.Uint64("session", s.id),
			zap.Int("cursor", s.cursor))
	case Finished:
		s.phase = Cancelled
	}
}
