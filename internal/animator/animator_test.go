package animator_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
	"github.com/san-kum/rodopios/internal/sink"
	"github.com/san-kum/rodopios/internal/trace"
)

const interval = 75 * time.Millisecond

func steps(symbols ...string) trace.Trace {
	t := make(trace.Trace, len(symbols))
	for i, s := range symbols {
		t[i] = trace.Step{Ordinal: i + 1, Symbol: s}
	}
	return t
}

// heldScheduler hands out handles whose Stop always reports the callback
// as already fired, so tests can run a stale tick by hand.
type heldScheduler struct {
	fns []func()
}

type heldHandle struct{}

func (heldHandle) Stop() bool { return false }

func (h *heldScheduler) AfterFunc(_ time.Duration, f func()) animator.Handle {
	h.fns = append(h.fns, f)
	return heldHandle{}
}

type countingObserver struct {
	steps    []animator.Progress
	finished []animator.Progress
}

func (c *countingObserver) OnStep(p animator.Progress)   { c.steps = append(c.steps, p) }
func (c *countingObserver) OnFinish(p animator.Progress) { c.finished = append(c.finished, p) }

var _ = Describe("Animator", func() {
	var (
		abc   *alphabet.Alphabet
		rec   *sink.Recorder
		sched *animator.ManualScheduler
		anim  *animator.Animator
	)

	BeforeEach(func() {
		abc = alphabet.MustNew("A", "B", "C")
		rec = sink.NewRecorder()
		sched = animator.NewManualScheduler()
		anim = animator.New(rec,
			animator.WithScheduler(sched),
			animator.WithInterval(interval))
	})

	It("starts idle", func() {
		Expect(anim.Phase()).To(Equal(animator.Idle))
		Expect(anim.Current()).To(BeNil())
		Expect(anim.Interval()).To(Equal(interval))
	})

	It("falls back to the default interval", func() {
		a := animator.New(rec, animator.WithInterval(0))
		Expect(a.Interval()).To(Equal(animator.DefaultInterval))
	})

	Describe("a resolvable trace", func() {
		It("de-highlights the previous slot before highlighting the next", func() {
			s := anim.Start(steps("B", "C"), abc)
			Expect(s.Phase()).To(Equal(animator.Running))
			Expect(rec.Len()).To(BeZero())

			sched.Advance(0)
			Expect(rec.Calls()).To(Equal([]sink.Call{
				sink.Highlight(1, true),
				sink.Label("B"),
			}))

			sched.Advance(interval - time.Millisecond)
			Expect(rec.Len()).To(Equal(2))

			sched.Advance(time.Millisecond)
			Expect(rec.Calls()).To(Equal([]sink.Call{
				sink.Highlight(1, true),
				sink.Label("B"),
				sink.Highlight(1, false),
				sink.Highlight(2, true),
				sink.Label("C"),
			}))
			Expect(s.Phase()).To(Equal(animator.Finished))
			Expect(s.LastSlot()).To(Equal(alphabet.SlotID(2)))
			Expect(s.Cursor()).To(Equal(2))
			Eventually(s.Done()).Should(BeClosed())
		})

		It("leaves nothing scheduled once finished", func() {
			anim.Start(steps("A", "B", "C"), abc)
			sched.RunUntilIdle(0)

			Expect(sched.Pending()).To(BeZero())
			Expect(sched.Now()).To(Equal(2 * interval))
			Expect(rec.Count(true)).To(Equal(3))
			Expect(rec.Count(false)).To(Equal(2))
		})
	})

	Describe("neutral sessions", func() {
		It("labels an empty trace N/A without highlighting", func() {
			s := anim.Start(nil, abc)

			Expect(rec.Calls()).To(Equal([]sink.Call{sink.Label(animator.NeutralLabel)}))
			Expect(s.Phase()).To(Equal(animator.Finished))
			Expect(sched.Pending()).To(BeZero())
		})

		It("labels an empty alphabet N/A without highlighting", func() {
			empty := alphabet.MustNew()
			s := anim.Start(steps("A", "B"), empty)

			Expect(rec.Calls()).To(Equal([]sink.Call{sink.Label(animator.NeutralLabel)}))
			Expect(s.Phase()).To(Equal(animator.Finished))
		})

		It("treats a nil alphabet as empty", func() {
			s := anim.Start(steps("A"), nil)
			Expect(rec.Labels()).To(Equal([]string{animator.NeutralLabel}))
			Expect(s.Phase()).To(Equal(animator.Finished))
		})
	})

	Describe("unresolved symbols", func() {
		It("shows the sentinel and still finishes", func() {
			s := anim.Start(steps("X"), abc)
			sched.RunUntilIdle(0)

			Expect(rec.Calls()).To(Equal([]sink.Call{sink.Label(animator.UnresolvedLabel)}))
			Expect(rec.Count(true)).To(BeZero())
			Expect(s.Phase()).To(Equal(animator.Finished))
		})

		It("consumes one tick per unresolved step", func() {
			anim.Start(steps("A", "X", "B"), abc)
			sched.RunUntilIdle(0)

			Expect(sched.Now()).To(Equal(2 * interval))
			Expect(rec.Calls()).To(Equal([]sink.Call{
				sink.Highlight(0, true),
				sink.Label("A"),
				sink.Highlight(0, false),
				sink.Label("?"),
				sink.Highlight(1, true),
				sink.Label("B"),
			}))
		})

		It("clears the previous slot when the last step is unresolved", func() {
			s := anim.Start(steps("A", "X"), abc)
			sched.RunUntilIdle(0)

			Expect(rec.Labels()).To(Equal([]string{"A", "?"}))
			Expect(s.LastSlot()).To(Equal(alphabet.NoSlot))
			Expect(rec.Count(true)).To(Equal(rec.Count(false)))
		})
	})

	Describe("supersession", func() {
		It("drops the first session when restarted before its first tick", func() {
			first := anim.Start(steps("A", "A", "A"), abc)
			second := anim.Start(steps("C"), abc)

			Expect(first.Phase()).To(Equal(animator.Cancelled))
			Expect(first.Done()).To(BeClosed())
			Expect(sched.Pending()).To(Equal(1))

			sched.RunUntilIdle(0)
			Expect(rec.Calls()).To(Equal([]sink.Call{
				sink.Highlight(2, true),
				sink.Label("C"),
			}))
			Expect(second.Phase()).To(Equal(animator.Finished))
			Expect(anim.Current()).To(BeIdenticalTo(second))
		})

		It("does not de-highlight the old slot on behalf of the new session", func() {
			anim.Start(steps("A", "B"), abc)
			sched.Advance(0)
			rec.Clear()

			anim.Start(steps("C"), abc)
			sched.RunUntilIdle(0)
			Expect(rec.Calls()).To(Equal([]sink.Call{
				sink.Highlight(2, true),
				sink.Label("C"),
			}))
		})

		It("ignores a stale tick that fired before cancel", func() {
			held := &heldScheduler{}
			a := animator.New(rec, animator.WithScheduler(held))
			s := a.Start(steps("A", "B"), abc)
			Expect(held.fns).To(HaveLen(1))

			s.Cancel()
			held.fns[0]()

			Expect(rec.Len()).To(BeZero())
			Expect(s.Phase()).To(Equal(animator.Cancelled))
		})

		It("ignores a stale tick from a superseded session", func() {
			held := &heldScheduler{}
			a := animator.New(rec, animator.WithScheduler(held))
			a.Start(steps("A", "B"), abc)
			a.Start(steps("C"), abc)

			held.fns[0]()
			Expect(rec.Len()).To(BeZero())

			held.fns[1]()
			Expect(rec.Labels()).To(Equal([]string{"C"}))
		})
	})

	Describe("cancel", func() {
		It("stops a running session", func() {
			s := anim.Start(steps("A", "B", "C"), abc)
			sched.Advance(0)
			anim.Cancel()

			Expect(s.Phase()).To(Equal(animator.Cancelled))
			Expect(sched.Pending()).To(BeZero())
			sched.RunUntilIdle(0)
			Expect(rec.Len()).To(Equal(2))
		})

		It("is idempotent after finish", func() {
			s := anim.Start(steps("A"), abc)
			sched.RunUntilIdle(0)
			n := rec.Len()

			anim.Cancel()
			anim.Cancel()
			s.Cancel()

			Expect(rec.Len()).To(Equal(n))
			Expect(s.Phase()).To(Equal(animator.Cancelled))
			Expect(s.Phase().Terminal()).To(BeTrue())
		})

		It("returns to idle on release", func() {
			anim.Start(steps("A", "B"), abc)
			anim.Release()

			Expect(anim.Phase()).To(Equal(animator.Idle))
			sched.RunUntilIdle(0)
			Expect(rec.Len()).To(BeZero())
		})

		It("is safe on an idle animator", func() {
			anim.Cancel()
			anim.Release()
			Expect(anim.Phase()).To(Equal(animator.Idle))
		})
	})

	Describe("sink reset", func() {
		It("clears a board before each session", func() {
			board := sink.NewBoard()
			a := animator.New(board, animator.WithScheduler(sched))

			a.Start(steps("A"), abc)
			sched.RunUntilIdle(0)
			Expect(board.Snapshot().Active(0)).To(BeTrue())

			a.Start(steps("B", "C"), abc)
			snap := board.Snapshot()
			Expect(snap.Highlighted).To(BeEmpty())
			Expect(snap.Label).To(BeEmpty())

			sched.RunUntilIdle(0)
			snap = board.Snapshot()
			Expect(snap.Highlighted).To(Equal([]alphabet.SlotID{2}))
			Expect(snap.Label).To(Equal("C"))
		})
	})

	Describe("observer", func() {
		It("reports every tick and the finish", func() {
			obs := &countingObserver{}
			a := animator.New(rec, animator.WithScheduler(sched), animator.WithObserver(obs))

			a.Start(steps("A", "X", "C"), abc)
			sched.RunUntilIdle(0)

			Expect(obs.steps).To(HaveLen(3))
			Expect(obs.steps[1].Resolved).To(BeFalse())
			Expect(obs.steps[1].Slot).To(Equal(alphabet.NoSlot))
			Expect(obs.steps[2].Slot).To(Equal(alphabet.SlotID(2)))
			Expect(obs.steps[2].Fraction()).To(Equal(1.0))

			Expect(obs.finished).To(HaveLen(1))
			Expect(obs.finished[0].Phase).To(Equal(animator.Finished))
			Expect(obs.finished[0].Step.Symbol).To(Equal("C"))
		})
	})

	Describe("highlight accounting", func() {
		It("matches resolved steps for random traces", func() {
			rng := rand.New(rand.NewSource(42))
			pool := []string{"A", "B", "C", "X", "Y"}

			for i := 0; i < 200; i++ {
				n := rng.Intn(12)
				syms := make([]string, n)
				resolved := 0
				for j := range syms {
					syms[j] = pool[rng.Intn(len(pool))]
					if abc.Contains(syms[j]) {
						resolved++
					}
				}

				rec.Clear()
				s := anim.Start(steps(syms...), abc)
				sched.RunUntilIdle(0)

				Expect(s.Phase()).To(Equal(animator.Finished))
				Expect(rec.Count(true)).To(Equal(resolved))

				stays := 0
				if n > 0 && abc.Contains(syms[n-1]) {
					stays = 1
				}
				Expect(rec.Count(false)).To(Equal(resolved - stays))
			}
		})
	})
})
