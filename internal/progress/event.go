// Package progress tracks scan completion and fans milestone events out to
// pluggable sinks.
package progress

import (
	"time"

	"github.com/google/uuid"
)

// Stage denotes the type of milestone represented by an Event.
type Stage string

// Supported progress stages.
const (
	StageScanStart  Stage = "SCAN_START"
	StageScanDone   Stage = "SCAN_DONE"
	StagePageDone   Stage = "PAGE_DONE"
	StageFetchRetry Stage = "FETCH_RETRY"
)

// Event captures a single milestone of a scan run.
type Event struct {
	// RunID correlates events belonging to one scan run.
	RunID uuid.UUID
	// TS is the UTC timestamp recorded by the emitter.
	TS time.Time
	// Stage denotes which milestone occurred.
	Stage Stage
	// Site optionally scopes the event to a base URL.
	Site string
	// URL is the page URL for page-scoped events.
	URL string
	// Page is the listing page number for page-scoped events.
	Page int
	// Articles counts the entries the page contributed.
	Articles int
	// Attempt is the 1-based fetch attempt number for retry events.
	Attempt int
	// Dur captures execution latency for page completions.
	Dur time.Duration
	// Note lets emitters attach low-volume debug context (e.g. error text).
	Note string
}
