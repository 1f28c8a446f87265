// Package perf provides the small wall-clock timer used by the
// benchmark driver.
package perf

import "time"

// Timer measures wall time between Start and Stop, accumulating across
// repeated runs, with an optional report tag.
type Timer struct {
	startTime time.Time
	started   bool
	total     time.Duration
	report    string
}

// Start begins a measurement. Starting an already-started timer resets
// the current interval.
func (t *Timer) Start() {
	t.startTime = time.Now()
	t.started = true
}

// Stop ends the current measurement and adds it to the total. Stop
// without a matching Start is a no-op.
func (t *Timer) Stop() {
	if !t.started {
		return
	}
	t.total += time.Since(t.startTime)
	t.started = false
}

// Total returns the accumulated duration across all Start/Stop pairs.
func (t *Timer) Total() time.Duration { return t.total }

// SetReport tags the timer with a label for reporting.
func (t *Timer) SetReport(report string) { t.report = report }

// Report returns the tag set with SetReport.
func (t *Timer) Report() string { return t.report }
