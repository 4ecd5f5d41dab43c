package sinks

import (
	"github.com/EXinshate/news-scraper/internal/metrics"
	"github.com/EXinshate/news-scraper/internal/progress"
)

// PrometheusSink maps progress events onto the package-level Prometheus
// collectors. Construction initializes the collectors.
type PrometheusSink struct{}

// NewPrometheusSink returns a sink backed by the metrics package.
func NewPrometheusSink() *PrometheusSink {
	metrics.Init()
	return &PrometheusSink{}
}

// Observe updates the collectors matching the event stage.
func (s *PrometheusSink) Observe(evt progress.Event) {
	site := metrics.SanitizeSite(evt.Site)
	switch evt.Stage {
	case progress.StagePageDone:
		outcome := "ok"
		if evt.Articles == 0 {
			outcome = "empty"
		}
		metrics.ObservePage(site, outcome, evt.Dur.Seconds())
		metrics.ObserveArticles(site, evt.Articles)
	case progress.StageFetchRetry:
		metrics.ObserveRetry(site)
	}
}
