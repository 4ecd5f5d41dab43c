package cmd

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKeywordFromFlag(t *testing.T) {
	t.Parallel()

	cmd := newScanCmd()
	require.NoError(t, cmd.Flags().Set("keyword", "banksy"))

	got, err := resolveKeyword(cmd, strings.NewReader("ignored\n"), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "banksy", got)
}

func TestResolveKeywordPromptsOnce(t *testing.T) {
	t.Parallel()

	cmd := newScanCmd()
	var out strings.Builder

	got, err := resolveKeyword(cmd, strings.NewReader("warhol\n"), &out)
	require.NoError(t, err)
	require.Equal(t, "warhol", got)
	require.Contains(t, out.String(), "keyword")
}

func TestResolveKeywordEmptyLineMeansNoFilter(t *testing.T) {
	t.Parallel()

	cmd := newScanCmd()
	got, err := resolveKeyword(cmd, strings.NewReader("\n"), io.Discard)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestResolveKeywordClosedStdin(t *testing.T) {
	t.Parallel()

	cmd := newScanCmd()
	got, err := resolveKeyword(cmd, strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	require.Empty(t, got)
}
