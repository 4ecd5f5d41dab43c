// Package extract parses listing pages into articles using goquery.
package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/EXinshate/news-scraper/internal/scanner"
)

// Selectors for the title containers on the listing pages. This is an
// external contract with the site markup: a layout change produces fewer or
// zero articles, never an error.
const (
	titleSelector = "h3.c-title"
	linkSelector  = "a.c-title__link"
)

// TitleExtractor implements scanner.Extractor for the fixed listing markup.
type TitleExtractor struct{}

// New returns a TitleExtractor.
func New() *TitleExtractor {
	return &TitleExtractor{}
}

// Extract returns the articles found in body, in document order. Containers
// without the expected nested link are skipped. A body that cannot be parsed
// yields an empty result.
func (e *TitleExtractor) Extract(body []byte) []scanner.Article {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var articles []scanner.Article
	doc.Find(titleSelector).Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find(linkSelector).First()
		if link.Length() == 0 {
			return
		}
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return
		}
		articles = append(articles, scanner.Article{Title: title, Link: href})
	})
	return articles
}
