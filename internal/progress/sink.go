package progress

// Sink observes progress events. Implementations must tolerate concurrent
// calls; the Tracker invokes them from multiple scan workers.
type Sink interface {
	Observe(evt Event)
}

// Emitter publishes individual events; Tracker satisfies this interface so
// emitters stay agnostic about how events are counted or exported.
type Emitter interface {
	Emit(evt Event)
}
