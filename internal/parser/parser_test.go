package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	out, err := ToHTML("**b** ~~s~~")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>b</strong> <del>s</del></p>\n", out)
}

func TestMarkdown_Shared(t *testing.T) {
	t.Parallel()

	assert.Same(t, Markdown(), Markdown())
}

func TestToHTML_Extensions(t *testing.T) {
	t.Parallel()

	html, err := ToHTML("| a |\n|---|\n| 1 |\n\n- [x] done\n")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, `type="checkbox"`)
}
