// Package animator drives the sequential highlight over the symbol wheel.
//
// An [Animator] consumes a [trace.Trace] and an [alphabet.Alphabet] and, one
// step per tick, tells a [Sink] which slot to highlight and which label to
// show in the centre:
//
//	rec := sink.NewBoard()
//	a := animator.New(rec, animator.WithInterval(75*time.Millisecond))
//	s := a.Start(tr, alphabet.Default())
//	<-s.Done()
//
// # Lifecycle
//
// At most one [Session] is live per Animator. Start cancels the previous
// session before creating the next, and Cancel stops the pending timer so
// that no sink call is made after it returns.
//
// # Thread Safety
//
// Ticks, Start and Cancel are serialised by the Animator. The sink is called
// with that lock held and must not call back into the Animator.
package animator
