package voxtopo

import "time"

// MetricsEvent is one data point handed to a MetricsSink: which operation
// ran and how long it took. Replaces the original tool's hard-coded
// subtract_time.txt file write with a callback the embedding application
// can wire to whatever it already logs/exports with.
type MetricsEvent struct {
	Operation string
	Duration  time.Duration
}

// MetricsSink receives a MetricsEvent after each timed Topology operation.
// Nil is the zero value and a valid "don't record anything" sink.
type MetricsSink func(MetricsEvent)

func (s MetricsSink) emit(operation string, d time.Duration) {
	if s == nil {
		return
	}
	s(MetricsEvent{Operation: operation, Duration: d})
}
