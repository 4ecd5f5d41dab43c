package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EXinshate/news-scraper/internal/metrics"
	"github.com/EXinshate/news-scraper/internal/progress"
)

// BuildWorklist assembles the cross product of base URLs and the inclusive
// page range [startPage, endPage].
func BuildWorklist(baseURLs []string, startPage, endPage int) []PageRequest {
	if startPage < 1 || endPage < startPage {
		return nil
	}
	requests := make([]PageRequest, 0, len(baseURLs)*(endPage-startPage+1))
	for _, base := range baseURLs {
		for page := startPage; page <= endPage; page++ {
			requests = append(requests, PageRequest{Page: page, BaseURL: base})
		}
	}
	return requests
}

// Orchestrator dispatches page tasks to a fixed-size worker pool and
// aggregates their articles as they complete.
type Orchestrator struct {
	fetcher   Fetcher
	extractor Extractor
	workers   int
	emitter   progress.Emitter
	logger    *zap.Logger
	runID     uuid.UUID
}

// NewOrchestrator constructs an Orchestrator. workers values below 1 are
// raised to 1.
func NewOrchestrator(
	fetcher Fetcher,
	extractor Extractor,
	workers int,
	emitter progress.Emitter,
	logger *zap.Logger,
	runID uuid.UUID,
) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		fetcher:   fetcher,
		extractor: extractor,
		workers:   workers,
		emitter:   emitter,
		logger:    logger,
		runID:     runID,
	}
}

// Run processes every request and returns the aggregated articles. The run
// waits for all tasks to reach a terminal state; completion order is
// arbitrary and the aggregate preserves only per-page internal order.
func (o *Orchestrator) Run(ctx context.Context, requests []PageRequest) []Article {
	start := time.Now()
	o.emit(progress.Event{Stage: progress.StageScanStart})

	jobs := make(chan PageRequest, len(requests))
	for _, request := range requests {
		jobs <- request
	}
	close(jobs)

	var (
		mu       sync.Mutex
		articles []Article
		wg       sync.WaitGroup
	)

	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for request := range jobs {
				taskStart := time.Now()
				entries := o.runTask(ctx, request)

				mu.Lock()
				articles = append(articles, entries...)
				mu.Unlock()

				o.emit(progress.Event{
					Stage:    progress.StagePageDone,
					Site:     request.BaseURL,
					URL:      request.URL(),
					Page:     request.Page,
					Articles: len(entries),
					Dur:      time.Since(taskStart),
				})
			}
		}()
	}

	wg.Wait()

	o.emit(progress.Event{
		Stage:    progress.StageScanDone,
		Articles: len(articles),
		Dur:      time.Since(start),
	})
	return articles
}

// runTask isolates one page task. A panic inside fetch or extract is logged
// with the page identity and contributes zero articles.
func (o *Orchestrator) runTask(ctx context.Context, request PageRequest) (entries []Article) {
	metrics.WorkerStarted()
	defer metrics.WorkerFinished()
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("page task panicked",
				zap.Int("page", request.Page),
				zap.String("base_url", request.BaseURL),
				zap.Any("panic", r),
			)
			entries = nil
		}
	}()
	return o.processPage(ctx, request)
}

func (o *Orchestrator) emit(evt progress.Event) {
	if o.emitter == nil {
		return
	}
	evt.RunID = o.runID
	o.emitter.Emit(evt)
}
