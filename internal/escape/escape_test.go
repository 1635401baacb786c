package escape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/escape"
)

func TestEscapeText_NoReserved(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "hello world", "你好", "📌 pinned", "a/b:c,d;e'f\"g"} {
		assert.Equal(t, s, escape.EscapeText(s))
	}
}

func TestEscapeText_EachReserved(t *testing.T) {
	t.Parallel()

	for _, c := range escape.ReservedChars {
		assert.Equal(t, `\`+string(c), escape.EscapeText(string(c)), "char %q", c)
	}
}

func TestEscapeText_Mixed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Hello, world\!`, escape.EscapeText("Hello, world!"))
	assert.Equal(t, `1 \+ 1 \= 2\.`, escape.EscapeText("1 + 1 = 2."))
	assert.Equal(t, `snake\_case\_name`, escape.EscapeText("snake_case_name"))
}

func TestEscapeText_NotIdempotent(t *testing.T) {
	t.Parallel()

	once := escape.EscapeText("a.b")
	twice := escape.EscapeText(once)

	assert.Equal(t, `a\.b`, once)
	assert.Equal(t, `a\\\.b`, twice)
}

func TestEscapeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/a_b.c", "https://example.com/a_b.c"},
		{"https://en.wikipedia.org/wiki/Go_(language)", `https://en.wikipedia.org/wiki/Go_(language\)`},
		{`https://x.co/\path`, `https://x.co/\\path`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escape.EscapeURL(tt.in))
	}
}

func TestEscapeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"fmt.Println(x)", "fmt.Println(x)"},
		{"a`b", "a\\`b"},
		{`C:\dir`, `C:\\dir`},
		{"\\`", "\\\\\\`"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escape.EscapeCode(tt.in))
	}
}
