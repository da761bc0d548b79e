package animator

import "github.com/san-kum/rodopios/internal/alphabet"

// Labels written to the centre of the wheel when there is nothing to show.
const (
	NeutralLabel    = "N/A"
	UnresolvedLabel = "?"
)

// Sink receives write-only highlight commands in the order they are issued.
// Implementations must tolerate the same value being set twice.
type Sink interface {
	SetHighlight(slot alphabet.SlotID, active bool)
	SetCenterLabel(text string)
}

// Resetter is implemented by sinks that can return to their neutral state
// in one call. Start invokes it before a new session begins.
type Resetter interface {
	Reset()
}

// Observer is notified after each tick's sink calls and once when a session
// finishes naturally.
type Observer interface {
	OnStep(p Progress)
	OnFinish(p Progress)
}

// Observers fans notifications out to every member in order.
type Observers []Observer

func (o Observers) OnStep(p Progress) {
	for _, ob := range o {
		ob.OnStep(p)
	}
}

func (o Observers) OnFinish(p Progress) {
	for _, ob := range o {
		ob.OnFinish(p)
	}
}

// NopSink discards every command.
type NopSink struct{}

func (NopSink) SetHighlight(alphabet.SlotID, bool) {}
func (NopSink) SetCenterLabel(string)              {}
