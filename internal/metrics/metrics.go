// Package metrics exposes Prometheus collectors for the scanner.
package metrics

import (
	"net/url"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanPagesTotal        *prometheus.CounterVec
	scanArticlesTotal     *prometheus.CounterVec
	scanFetchRetriesTotal *prometheus.CounterVec
	scanActiveWorkers     prometheus.Gauge
	scanPageDurationSecs  *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		scanPagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsscan_pages_total",
				Help: "Total number of listing pages processed, labeled by site and outcome.",
			},
			[]string{"site", "outcome"},
		)

		scanArticlesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsscan_articles_total",
				Help: "Total number of articles extracted, labeled by site.",
			},
			[]string{"site"},
		)

		scanFetchRetriesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsscan_fetch_retries_total",
				Help: "Total number of failed fetch attempts, labeled by site.",
			},
			[]string{"site"},
		)

		scanActiveWorkers = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "newsscan_active_workers",
				Help: "Number of workers currently processing a page.",
			},
		)

		scanPageDurationSecs = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "newsscan_page_duration_seconds",
				Help:    "Histogram of page fetch-and-extract latencies, labeled by site.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"site"},
		)
	})
}

// ObservePage records a processed page with its outcome ("ok" or "empty").
func ObservePage(site, outcome string, durationSecs float64) {
	if scanPagesTotal == nil {
		return
	}
	scanPagesTotal.WithLabelValues(site, outcome).Inc()
	scanPageDurationSecs.WithLabelValues(site).Observe(durationSecs)
}

// ObserveArticles adds extracted article counts for a site.
func ObserveArticles(site string, count int) {
	if scanArticlesTotal == nil || count <= 0 {
		return
	}
	scanArticlesTotal.WithLabelValues(site).Add(float64(count))
}

// ObserveRetry records a failed fetch attempt for a site.
func ObserveRetry(site string) {
	if scanFetchRetriesTotal == nil {
		return
	}
	scanFetchRetriesTotal.WithLabelValues(site).Inc()
}

// WorkerStarted and WorkerFinished maintain the active worker gauge.
func WorkerStarted() {
	if scanActiveWorkers != nil {
		scanActiveWorkers.Inc()
	}
}

// WorkerFinished decrements the active worker gauge.
func WorkerFinished() {
	if scanActiveWorkers != nil {
		scanActiveWorkers.Dec()
	}
}

// SanitizeSite sanitizes a URL to extract a lowercase hostname.
// It returns "unknown" if the URL is invalid.
func SanitizeSite(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}
