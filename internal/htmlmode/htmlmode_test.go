package htmlmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "  \n", "  \n"},
		{"bold and italic", "**bold** and *it*", "<b>bold</b> and <i>it</i>"},
		{"strikethrough", "~~gone~~", "<s>gone</s>"},
		{"inline code", "use `x := 1`", "use <code>x := 1</code>"},
		{"link", "[site](https://x.co)", `<a href="https://x.co">site</a>`},
		{"escapes html", "a < b & c", "a &lt; b &amp; c"},
		{"heading", "# Title", "<b>Title</b>"},
		{"bullets", "- one\n- two", "• one\n• two"},
		{"ordered", "1. one\n2. two", "1. one\n2. two"},
		{"fenced code", "```go\nx := 1\n```", "<pre>x := 1\n</pre>"},
		{"blockquote", "> quoted", "<blockquote>quoted</blockquote>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Render(tt.in))
		})
	}
}

func TestRender_Paragraphs(t *testing.T) {
	t.Parallel()

	got := Render("first\n\nsecond")
	assert.Equal(t, "first\n\nsecond", got)
}

func TestRender_TaskList(t *testing.T) {
	t.Parallel()

	got := Render("- [x] done\n- [ ] todo")
	assert.Contains(t, got, "☑")
	assert.Contains(t, got, "☐")
	assert.Contains(t, got, "done")
}

func TestRender_Table(t *testing.T) {
	t.Parallel()

	got := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.Contains(t, got, "<pre>")
	assert.Contains(t, got, "a | b")
	assert.Contains(t, got, "1 | 2")
	assert.Contains(t, got, "</pre>")
}
