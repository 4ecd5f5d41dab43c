// Package report renders scan results for the console.
package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/EXinshate/news-scraper/internal/scanner"
)

const notFoundMessage = "No articles matched your criteria."

const tmplArticles = `{{delim}}
{{- range $i, $a := .}}
{{inc $i}}. {{$a.Title}}
   Link: {{$a.Link}}
{{delim}}
{{- end}}
`

var articleList = template.Must(template.New("articles").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"delim": func() string { return "--------------------" },
}).Parse(tmplArticles))

// Render writes the article list to w: a 1-based index, the title, and the
// link per entry, separated by delimiter lines. An empty list renders the
// not-found message instead.
func Render(w io.Writer, articles []scanner.Article) error {
	if len(articles) == 0 {
		if _, err := fmt.Fprintln(w, notFoundMessage); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	if err := articleList.Execute(w, articles); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
