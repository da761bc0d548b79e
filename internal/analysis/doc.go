// Package analysis summarises traces for reports and plots.
//
//   - [Summarize]: slot histogram, resolved counts and rotation statistics
//   - [SlotSeries] and [Rodopios]: per-step series for charting
//   - [HistogramToASCII]: bar chart of slot visits
//
// A step whose symbol is not in the alphabet counts as unresolved and is
// excluded from the histogram:
//
//	s := analysis.Summarize(tr, alphabet.Default())
//	fmt.Println(s.Resolved, s.Unresolved, s.MeanRodopios)
package analysis
