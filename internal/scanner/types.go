// Package scanner defines core types shared across subsystems and the
// orchestration loop that drives a scan run.
package scanner

import (
	"fmt"
	"time"
)

// Article is a single listing entry extracted from a news-index page.
type Article struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// PageRequest identifies one listing page to fetch. Requests are built once
// when the worklist is assembled and consumed by exactly one task.
type PageRequest struct {
	Page    int
	BaseURL string
}

// URL computes the request URL for the page. Page 1 is the bare base URL;
// later pages follow the site's /page/{n}/ convention.
func (p PageRequest) URL() string {
	if p.Page <= 1 {
		return p.BaseURL
	}
	return fmt.Sprintf("%spage/%d/", p.BaseURL, p.Page)
}

// FetchRequest captures everything needed to fetch a URL.
type FetchRequest struct {
	URL string
}

// FetchResponse is the result returned by a Fetcher implementation.
type FetchResponse struct {
	URL        string
	StatusCode int
	Body       []byte
	Duration   time.Duration
}
