package progress

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Tracker counts completed pages against a known total and fans each event
// out to all registered sinks. Emit is safe for concurrent use; sinks are
// invoked synchronously in registration order.
type Tracker struct {
	runID     uuid.UUID
	total     int64
	completed atomic.Int64
	sinks     []Sink
}

// NewTracker builds a Tracker for a run of total pages. Events emitted
// without a run ID are stamped with runID before fan-out.
func NewTracker(runID uuid.UUID, total int, sinks ...Sink) *Tracker {
	return &Tracker{
		runID: runID,
		total: int64(total),
		sinks: append([]Sink(nil), sinks...),
	}
}

// Emit records the event. Page completions advance the completion counter by
// one regardless of how many articles the page produced.
func (t *Tracker) Emit(evt Event) {
	if t == nil {
		return
	}
	if evt.TS.IsZero() {
		evt.TS = time.Now().UTC()
	}
	if evt.RunID == (uuid.UUID{}) {
		evt.RunID = t.runID
	}
	if evt.Stage == StagePageDone {
		t.completed.Add(1)
	}
	for _, sink := range t.sinks {
		if sink == nil {
			continue
		}
		sink.Observe(evt)
	}
}

// Completed returns the number of pages that have reached a terminal state.
func (t *Tracker) Completed() int {
	return int(t.completed.Load())
}

// Total returns the number of pages in the worklist.
func (t *Tracker) Total() int {
	return int(t.total)
}
