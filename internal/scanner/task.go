package scanner

import (
	"context"

	"go.uber.org/zap"
)

// processPage runs one page task: build the URL, fetch, extract. Every
// failure mode degrades to an empty result so siblings keep running.
func (o *Orchestrator) processPage(ctx context.Context, request PageRequest) []Article {
	url := request.URL()

	resp, err := o.fetcher.Fetch(ctx, FetchRequest{URL: url})
	if err != nil {
		o.logger.Warn("page fetch gave up",
			zap.Int("page", request.Page),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil
	}

	return o.extractor.Extract(resp.Body)
}
