package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageRequestURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  PageRequest
		want string
	}{
		{
			name: "page one is the bare base url",
			req:  PageRequest{Page: 1, BaseURL: "https://x/"},
			want: "https://x/",
		},
		{
			name: "later pages use the page path",
			req:  PageRequest{Page: 5, BaseURL: "https://x/"},
			want: "https://x/page/5/",
		},
		{
			name: "page two",
			req:  PageRequest{Page: 2, BaseURL: "https://www.artnews.com/art-news/market/"},
			want: "https://www.artnews.com/art-news/market/page/2/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.req.URL())
		})
	}
}

func TestBuildWorklist(t *testing.T) {
	t.Parallel()

	bases := []string{"https://a/", "https://b/"}
	worklist := BuildWorklist(bases, 2, 4)

	require.Len(t, worklist, 6)
	require.Equal(t, PageRequest{Page: 2, BaseURL: "https://a/"}, worklist[0])
	require.Equal(t, PageRequest{Page: 4, BaseURL: "https://b/"}, worklist[5])
}

func TestBuildWorklist_InvalidRange(t *testing.T) {
	t.Parallel()

	require.Empty(t, BuildWorklist([]string{"https://a/"}, 5, 2))
	require.Empty(t, BuildWorklist([]string{"https://a/"}, 0, 3))
}
