package sink

import (
	"go.uber.org/zap"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
)

// Tee forwards every call to each sink in order.
type Tee []animator.Sink

var (
	_ animator.Sink     = Tee(nil)
	_ animator.Resetter = Tee(nil)
)

func (t Tee) SetHighlight(slot alphabet.SlotID, active bool) {
	for _, s := range t {
		s.SetHighlight(slot, active)
	}
}

func (t Tee) SetCenterLabel(text string) {
	for _, s := range t {
		s.SetCenterLabel(text)
	}
}

// Reset forwards to the members that support it.
func (t Tee) Reset() {
	for _, s := range t {
		if r, ok := s.(animator.Resetter); ok {
			r.Reset()
		}
	}
}

// Logged writes a debug line for each call before forwarding it.
type Logged struct {
	Next   animator.Sink
	Logger *zap.Logger
}

var _ animator.Sink = (*Logged)(nil)

func NewLogged(next animator.Sink, logger *zap.Logger) *Logged {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logged{Next: next, Logger: logger}
}

func (l *Logged) SetHighlight(slot alphabet.SlotID, active bool) {
	l.Logger.Debug("highlight", zap.Int("slot", int(slot)), zap.Bool("active", active))
	l.Next.SetHighlight(slot, active)
}

func (l *Logged) SetCenterLabel(text string) {
	l.Logger.Debug("center label", zap.String("text", text))
	l.Next.SetCenterLabel(text)
}

func (l *Logged) Reset() {
	if r, ok := l.Next.(animator.Resetter); ok {
		l.Logger.Debug("reset")
		r.Reset()
	}
}
