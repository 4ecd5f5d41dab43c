package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/EXinshate/news-scraper/internal/progress"
)

// RetryingFetcher decorates a Fetcher with bounded retries at a fixed delay
// between attempts. The delay does not grow and carries no jitter; the
// listing sites respond within a try or two or not at all.
type RetryingFetcher struct {
	next        Fetcher
	maxAttempts int
	delay       time.Duration
	emitter     progress.Emitter
	logger      *zap.Logger
}

// NewRetryingFetcher wraps next with retry behavior. maxAttempts includes
// the first try; values below 1 are raised to 1.
func NewRetryingFetcher(
	next Fetcher,
	maxAttempts int,
	delay time.Duration,
	emitter progress.Emitter,
	logger *zap.Logger,
) *RetryingFetcher {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryingFetcher{
		next:        next,
		maxAttempts: maxAttempts,
		delay:       delay,
		emitter:     emitter,
		logger:      logger,
	}
}

// Fetch tries the underlying fetcher up to maxAttempts times. Each failed
// attempt is logged and reported; context cancellation stops retrying
// immediately. The last error is returned once attempts are exhausted.
func (f *RetryingFetcher) Fetch(ctx context.Context, request FetchRequest) (FetchResponse, error) {
	var (
		resp    FetchResponse
		attempt int
	)

	operation := func() error {
		attempt++
		r, err := f.next.Fetch(ctx, request)
		if err == nil {
			resp = r
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		f.logger.Warn("fetch attempt failed",
			zap.String("url", request.URL),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", f.maxAttempts),
			zap.Error(err),
		)
		if f.emitter != nil {
			f.emitter.Emit(progress.Event{
				Stage:   progress.StageFetchRetry,
				Site:    request.URL,
				URL:     request.URL,
				Attempt: attempt,
				Note:    err.Error(),
			})
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(f.delay), uint64(f.maxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return FetchResponse{}, fmt.Errorf("fetch %s: attempts exhausted: %w", request.URL, err)
	}
	return resp, nil
}
