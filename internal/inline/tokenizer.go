// Package inline 扫描单行文本，识别行内 Markdown 结构并渲染为 MarkdownV2
//
// 每个扫描位置按固定优先级依次尝试匹配器，第一个成功的获胜：
//
//	Link → CodeSpan → BoldItalic → Bold → Italic → BareURL
//
// 匹配到的结构内部不会再次被解析，只做转义。
package inline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/escape"
)

var (
	linkRe       = regexp.MustCompile(`^\[([^\]\n]+)\]\(((?i:https?)://[^\s\p{Z}\x{85})]+)\)`)
	codeSpanRe   = regexp.MustCompile("^`([^`\n]+)`")
	boldItalicRe = regexp.MustCompile(`^\*\*\*(.+?)\*\*\*`)
	boldRe       = regexp.MustCompile(`^\*\*(.+?)\*\*`)
	bareURLRe    = regexp.MustCompile(`^(?i:https?)://[^\s\p{Z}\x{85}]+`)
)

// matcher 尝试在 line[pos:] 开头匹配一个结构，返回 token 和结束位置
type matcher func(line string, pos int) (Token, int, bool)

// matchers 的顺序就是优先级
var matchers = []matcher{
	matchLink,
	matchCodeSpan,
	matchBoldItalic,
	matchBold,
	matchItalic,
	matchBareURL,
}

// Tokenize 从左到右扫描一行，返回覆盖整行、互不重叠的 token 序列
func Tokenize(line string) []Token {
	tokens := make([]Token, 0)
	plainStart := 0

	for pos := 0; pos < len(line); {
		tok, end, ok := matchAt(line, pos)
		if !ok {
			_, size := utf8.DecodeRuneInString(line[pos:])
			pos += size
			continue
		}
		if pos > plainStart {
			tokens = append(tokens, Token{Kind: PlainRun, Text: line[plainStart:pos]})
		}
		tokens = append(tokens, tok)
		pos = end
		plainStart = end
	}

	if plainStart < len(line) {
		tokens = append(tokens, Token{Kind: PlainRun, Text: line[plainStart:]})
	}
	return tokens
}

func matchAt(line string, pos int) (Token, int, bool) {
	for _, m := range matchers {
		if tok, end, ok := m(line, pos); ok {
			return tok, end, true
		}
	}
	return Token{}, pos, false
}

func matchLink(line string, pos int) (Token, int, bool) {
	if line[pos] != '[' {
		return Token{}, pos, false
	}
	loc := linkRe.FindStringSubmatchIndex(line[pos:])
	if loc == nil {
		return Token{}, pos, false
	}
	rest := line[pos:]
	return Token{
		Kind:   Link,
		Text:   rest[loc[2]:loc[3]],
		Target: rest[loc[4]:loc[5]],
	}, pos + loc[1], true
}

func matchCodeSpan(line string, pos int) (Token, int, bool) {
	if line[pos] != '`' {
		return Token{}, pos, false
	}
	return matchDelimited(codeSpanRe, CodeSpan, line, pos)
}

func matchBoldItalic(line string, pos int) (Token, int, bool) {
	if !strings.HasPrefix(line[pos:], "***") {
		return Token{}, pos, false
	}
	return matchDelimited(boldItalicRe, BoldItalic, line, pos)
}

func matchBold(line string, pos int) (Token, int, bool) {
	if !strings.HasPrefix(line[pos:], "**") {
		return Token{}, pos, false
	}
	return matchDelimited(boldRe, Bold, line, pos)
}

// matchItalic 匹配 *text*，开闭两个 * 都不能紧挨着另一个 *
//
// 内部可以出现 **，向后寻找第一个两侧都不是 * 的闭合位置。
func matchItalic(line string, pos int) (Token, int, bool) {
	if line[pos] != '*' || (pos > 0 && line[pos-1] == '*') {
		return Token{}, pos, false
	}
	start := pos + 1
	if start >= len(line) || line[start] == '*' {
		return Token{}, pos, false
	}
	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\n', '\r':
			return Token{}, pos, false
		case '*':
			if line[i-1] == '*' || (i+1 < len(line) && line[i+1] == '*') {
				continue
			}
			return Token{Kind: Italic, Text: line[start:i]}, i + 1, true
		}
	}
	return Token{}, pos, false
}

func matchBareURL(line string, pos int) (Token, int, bool) {
	if c := line[pos]; c != 'h' && c != 'H' {
		return Token{}, pos, false
	}
	loc := bareURLRe.FindStringIndex(line[pos:])
	if loc == nil {
		return Token{}, pos, false
	}
	return Token{Kind: BareURL, Text: line[pos : pos+loc[1]]}, pos + loc[1], true
}

func matchDelimited(re *regexp.Regexp, kind Kind, line string, pos int) (Token, int, bool) {
	loc := re.FindStringSubmatchIndex(line[pos:])
	if loc == nil {
		return Token{}, pos, false
	}
	rest := line[pos:]
	return Token{Kind: kind, Text: rest[loc[2]:loc[3]]}, pos + loc[1], true
}

// Render 把单个 token 渲染为 MarkdownV2
func (t Token) Render() string {
	switch t.Kind {
	case Link:
		return "[" + escape.EscapeText(t.Text) + "](" + escape.EscapeURL(t.Target) + ")"
	case CodeSpan:
		return "`" + escape.EscapeCode(t.Text) + "`"
	case BoldItalic:
		return "*_" + escape.EscapeText(t.Text) + "_*"
	case Bold:
		return "*" + escape.EscapeText(t.Text) + "*"
	case Italic:
		return "_" + escape.EscapeText(t.Text) + "_"
	case BareURL:
		return "[" + escape.EscapeText(t.Text) + "](" + escape.EscapeURL(t.Text) + ")"
	default:
		return escape.EscapeText(t.Text)
	}
}

// Render 按顺序渲染 token 序列
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Render())
	}
	return sb.String()
}

// Format 识别并渲染一行文本
func Format(line string) string {
	return Render(Tokenize(line))
}

// HasEmphasis 判断文本中是否已有会被识别为粗体/斜体的字面标记
func HasEmphasis(text string) bool {
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' }) {
		for _, t := range Tokenize(line) {
			if t.Kind.IsEmphasis() {
				return true
			}
		}
	}
	return false
}
