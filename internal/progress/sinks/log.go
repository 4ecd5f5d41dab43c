// Package sinks provides progress.Sink implementations.
package sinks

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/EXinshate/news-scraper/internal/progress"
)

// LogSink renders progress as structured logs: run milestones at Info, one
// "page done" line with a running count per completion.
type LogSink struct {
	logger    *zap.Logger
	total     int64
	completed atomic.Int64
}

// NewLogSink wires a Zap logger to the sink interface. The total is used for
// the completed/total counter attached to page events.
func NewLogSink(logger *zap.Logger, total int) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger, total: int64(total)}
}

// Observe logs the event using structured fields.
func (s *LogSink) Observe(evt progress.Event) {
	switch evt.Stage {
	case progress.StageScanStart:
		s.logger.Info("scan started",
			zap.String("run_id", evt.RunID.String()),
			zap.Int64("pages", s.total),
		)
	case progress.StageScanDone:
		s.logger.Info("scan finished",
			zap.String("run_id", evt.RunID.String()),
			zap.Int("articles", evt.Articles),
			zap.Duration("dur", evt.Dur),
		)
	case progress.StagePageDone:
		done := s.completed.Add(1)
		s.logger.Info("page done",
			zap.String("url", evt.URL),
			zap.Int("articles", evt.Articles),
			zap.Int64("completed", done),
			zap.Int64("total", s.total),
			zap.String("note", evt.Note),
		)
	case progress.StageFetchRetry:
		s.logger.Warn("fetch attempt failed",
			zap.String("url", evt.URL),
			zap.Int("attempt", evt.Attempt),
			zap.String("note", evt.Note),
		)
	}
}
