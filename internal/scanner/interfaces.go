package scanner

import "context"

// Fetcher fetches a URL and returns the body plus metadata.
type Fetcher interface {
	Fetch(ctx context.Context, request FetchRequest) (FetchResponse, error)
}

// Extractor turns a fetched listing body into articles.
type Extractor interface {
	Extract(body []byte) []Article
}
