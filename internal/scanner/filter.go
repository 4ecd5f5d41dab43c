package scanner

import "strings"

// FilterByKeyword returns the articles whose titles contain keyword,
// compared case-insensitively, preserving their relative order. An empty
// keyword returns the input unchanged.
func FilterByKeyword(articles []Article, keyword string) []Article {
	if keyword == "" {
		return articles
	}
	needle := strings.ToLower(keyword)

	var matched []Article
	for _, article := range articles {
		if strings.Contains(strings.ToLower(article.Title), needle) {
			matched = append(matched, article)
		}
	}
	return matched
}
