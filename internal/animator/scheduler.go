package animator

import (
	"sort"
	"sync"
	"time"
)

// Handle cancels a callback registered with a Scheduler. Stop reports
// whether the call prevented the callback from running.
type Handle interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
}

// TimerScheduler schedules on the wall clock with time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) Handle {
	return time.AfterFunc(d, f)
}

// ManualScheduler is a virtual clock. Callbacks only run from Advance or
// RunUntilIdle, on the caller's goroutine, in due-time order.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner *ManualScheduler
	due   time.Duration
	seq   uint64
	fn    func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Handle {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{owner: m, due: m.now + d, seq: m.seq, fn: f}
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Stop() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remove(t)
}

func (m *ManualScheduler) remove(t *manualTask) bool {
	for i, other := range m.tasks {
		if other == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Now returns the virtual time elapsed since creation.
func (m *ManualScheduler) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of callbacks waiting to run.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way, including ones scheduled by earlier callbacks. It returns
// the number of callbacks run.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	fired := 0
	for {
		t := m.pop(target, true)
		if t == nil {
			break
		}
		t.fn()
		fired++
	}

	m.mu.Lock()
	if m.now < target {
		m.now = target
	}
	m.mu.Unlock()
	return fired
}

// RunUntilIdle runs callbacks, advancing the clock as needed, until none
// remain or limit callbacks have run. A limit of zero means no limit.
func (m *ManualScheduler) RunUntilIdle(limit int) int {
	fired := 0
	for limit <= 0 || fired < limit {
		t := m.pop(0, false)
		if t == nil {
			break
		}
		t.fn()
		fired++
	}
	return fired
}

// pop removes and returns the earliest task, optionally bounded by target.
func (m *ManualScheduler) pop(target time.Duration, bounded bool) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	t := m.tasks[0]
	if bounded && t.due > target {
		return nil
	}
	m.tasks = m.tasks[1:]
	if t.due > m.now {
		m.now = t.due
	}
	return t
}
