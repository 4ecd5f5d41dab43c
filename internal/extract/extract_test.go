package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
<div class="feed">
  <h3 class="c-title">
    <a class="c-title__link" href="https://example.com/first">  First Story  </a>
  </h3>
  <h3 class="c-title">
    <span>decorative</span>
  </h3>
  <h3 class="c-title">
    <a class="c-title__link">No Href Here</a>
  </h3>
  <h3 class="other-title">
    <a class="c-title__link" href="https://example.com/wrong-container">Wrong Container</a>
  </h3>
  <h3 class="c-title">
    <a class="c-title__link" href="https://example.com/second">Second Story</a>
  </h3>
</div>
</body></html>`

func TestExtract_MatchingContainersInDocumentOrder(t *testing.T) {
	t.Parallel()

	articles := New().Extract([]byte(listingPage))

	require.Len(t, articles, 2)
	require.Equal(t, "First Story", articles[0].Title)
	require.Equal(t, "https://example.com/first", articles[0].Link)
	require.Equal(t, "Second Story", articles[1].Title)
	require.Equal(t, "https://example.com/second", articles[1].Link)
}

func TestExtract_SkipsContainersWithoutLink(t *testing.T) {
	t.Parallel()

	html := `<h3 class="c-title"><em>plain text only</em></h3>`
	require.Empty(t, New().Extract([]byte(html)))
}

func TestExtract_SkipsLinksWithoutHref(t *testing.T) {
	t.Parallel()

	html := `<h3 class="c-title"><a class="c-title__link">unlinked</a></h3>`
	require.Empty(t, New().Extract([]byte(html)))
}

func TestExtract_SkipsEmptyTitles(t *testing.T) {
	t.Parallel()

	html := `<h3 class="c-title"><a class="c-title__link" href="https://example.com/x">   </a></h3>`
	require.Empty(t, New().Extract([]byte(html)))
}

func TestExtract_GarbageInputYieldsNothing(t *testing.T) {
	t.Parallel()

	require.Empty(t, New().Extract([]byte("\x00\x01 not html at all <<<>")))
	require.Empty(t, New().Extract(nil))
}
