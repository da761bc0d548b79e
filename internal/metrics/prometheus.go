package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionsDesc = prometheus.NewDesc("rodopios_sessions_total",
		"Animation sessions that ticked at least once.", nil, nil)
	finishedDesc = prometheus.NewDesc("rodopios_sessions_finished_total",
		"Sessions that reached their last step.", nil, nil)
	stepsDesc = prometheus.NewDesc("rodopios_steps_total",
		"Animator ticks observed.", nil, nil)
	resolvedDesc = prometheus.NewDesc("rodopios_steps_resolved_total",
		"Ticks whose symbol was found in the alphabet.", nil, nil)
	unresolvedDesc = prometheus.NewDesc("rodopios_steps_unresolved_total",
		"Ticks whose symbol was not found in the alphabet.", nil, nil)
	travelDesc = prometheus.NewDesc("rodopios_travel_slots_total",
		"Clockwise slots travelled between consecutive highlights.", nil, nil)
)

var _ prometheus.Collector = (*Counter)(nil)

func (c *Counter) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{sessionsDesc, finishedDesc, stepsDesc, resolvedDesc, unresolvedDesc, travelDesc} {
		ch <- d
	}
}

func (c *Counter) Collect(ch chan<- prometheus.Metric) {
	n := c.Counts()
	for _, m := range []struct {
		desc *prometheus.Desc
		v    int
	}{
		{sessionsDesc, n.Sessions},
		{finishedDesc, n.Finished},
		{stepsDesc, n.Steps},
		{resolvedDesc, n.Resolved},
		{unresolvedDesc, n.Unresolved},
		{travelDesc, n.Travel},
	} {
		ch <- prometheus.MustNewConstMetric(m.desc, prometheus.CounterValue, float64(m.v))
	}
}

// WriteTextfile writes the counters in the text exposition format, for the
// node exporter textfile collector.
func WriteTextfile(path string, collectors ...prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return prometheus.WriteToTextfile(path, reg)
}
