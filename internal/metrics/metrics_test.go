package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveRetryIncrementsCounter(t *testing.T) {
	Init()

	before := testutil.ToFloat64(scanFetchRetriesTotal.WithLabelValues("retry.example.com"))
	ObserveRetry("retry.example.com")
	ObserveRetry("retry.example.com")
	after := testutil.ToFloat64(scanFetchRetriesTotal.WithLabelValues("retry.example.com"))

	require.Equal(t, 2.0, after-before)
}

func TestObservePageAndArticles(t *testing.T) {
	Init()

	ObservePage("pages.example.com", "ok", 0.25)
	ObserveArticles("pages.example.com", 3)
	ObserveArticles("pages.example.com", 0) // no-op

	require.Equal(t, 3.0, testutil.ToFloat64(scanArticlesTotal.WithLabelValues("pages.example.com")))
	require.Equal(t, 1.0, testutil.ToFloat64(scanPagesTotal.WithLabelValues("pages.example.com", "ok")))
}

func TestWorkerGauge(t *testing.T) {
	Init()

	base := testutil.ToFloat64(scanActiveWorkers)
	WorkerStarted()
	WorkerStarted()
	require.Equal(t, base+2, testutil.ToFloat64(scanActiveWorkers))
	WorkerFinished()
	WorkerFinished()
	require.Equal(t, base, testutil.ToFloat64(scanActiveWorkers))
}

func TestSanitizeSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.Artnews.com/c/art-news/market/", "www.artnews.com"},
		{"example.com/path", "example.com"},
		{"://bad url", "unknown"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SanitizeSite(tt.raw))
	}
}
