package sink

import (
	"sort"
	"sync"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
)

// Snapshot is the visible state of a Board at one instant.
type Snapshot struct {
	Highlighted []alphabet.SlotID
	Label       string
	Version     uint64
}

// Active reports whether slot is highlighted.
func (s Snapshot) Active(slot alphabet.SlotID) bool {
	for _, h := range s.Highlighted {
		if h == slot {
			return true
		}
	}
	return false
}

// Board applies highlight commands to an in-memory picture of the wheel.
// It is safe for concurrent use: the animator writes from its timer
// goroutine while renderers read snapshots.
type Board struct {
	mu      sync.RWMutex
	active  map[alphabet.SlotID]struct{}
	label   string
	version uint64
}

var (
	_ animator.Sink     = (*Board)(nil)
	_ animator.Resetter = (*Board)(nil)
)

func NewBoard() *Board {
	return &Board{active: make(map[alphabet.SlotID]struct{})}
}

func (b *Board) SetHighlight(slot alphabet.SlotID, active bool) {
	if !slot.Valid() {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	_, on := b.active[slot]
	if on == active {
		return
	}
	if active {
		b.active[slot] = struct{}{}
	} else {
		delete(b.active, slot)
	}
	b.version++
}

func (b *Board) SetCenterLabel(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.label == text {
		return
	}
	b.label = text
	b.version++
}

// Reset clears every highlight and the label.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.active) == 0 && b.label == "" {
		return
	}
	b.active = make(map[alphabet.SlotID]struct{})
	b.label = ""
	b.version++
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	hl := make([]alphabet.SlotID, 0, len(b.active))
	for s := range b.active {
		hl = append(hl, s)
	}
	sort.Slice(hl, func(i, j int) bool { return hl[i] < hl[j] })
	return Snapshot{Highlighted: hl, Label: b.label, Version: b.version}
}
