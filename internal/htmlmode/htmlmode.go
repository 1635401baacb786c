// Package htmlmode renders Markdown to the HTML subset accepted by
// Telegram's parse_mode=HTML.
//
// It backs the delivery fallback: when Telegram rejects a MarkdownV2
// message, the original text is re-rendered here and sent as HTML.
package htmlmode

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/parser"
)

// Render converts Markdown text to Telegram-compatible HTML.
//
// Telegram's Bot API supports a limited HTML subset:
//
//	<b>, <strong>, <i>, <em>, <u>, <ins>, <s>, <strike>, <del>,
//	<code>, <pre>, <a href>, <blockquote>, <tg-spoiler>
//
// Everything else is mapped or stripped.
func Render(md string) string {
	if strings.TrimSpace(md) == "" {
		return md
	}

	out, err := parser.ToHTML(md)
	if err != nil {
		return html.EscapeString(md)
	}

	return toTelegram(out)
}

type listState struct {
	ordered bool
	counter int
}

// toTelegram walks goldmark's HTML output and produces Telegram-safe HTML.
func toTelegram(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))

	var sb strings.Builder
	var listStack []listState
	inPre := false
	inTable := false
	cellIndex := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := z.Token()

		switch tt {
		case html.TextToken:
			if !inPre && strings.TrimSpace(tok.Data) == "" && strings.Contains(tok.Data, "\n") {
				continue
			}
			// The tokenizer unescapes entities; Telegram needs them back.
			sb.WriteString(html.EscapeString(tok.Data))

		case html.StartTagToken, html.SelfClosingTagToken:
			switch tok.Data {
			case "b", "strong":
				sb.WriteString("<b>")
			case "i", "em":
				sb.WriteString("<i>")
			case "u", "ins":
				sb.WriteString("<u>")
			case "s", "strike", "del":
				sb.WriteString("<s>")
			case "code":
				if !inPre && !inTable {
					sb.WriteString("<code>")
				}
			case "pre":
				inPre = true
				sb.WriteString("<pre>")
			case "a":
				if href := attrVal(tok.Attr, "href"); href != "" {
					fmt.Fprintf(&sb, `<a href="%s">`, html.EscapeString(href))
				} else {
					sb.WriteString("<a>")
				}
			case "blockquote":
				sb.WriteString("<blockquote>")
			case "br":
				sb.WriteString("\n")
			case "ul":
				listStack = append(listStack, listState{})
			case "ol":
				listStack = append(listStack, listState{ordered: true})
			case "li":
				sb.WriteString("\n")
				sb.WriteString(strings.Repeat("  ", max(len(listStack)-1, 0)))
				if n := len(listStack); n > 0 && listStack[n-1].ordered {
					listStack[n-1].counter++
					fmt.Fprintf(&sb, "%d. ", listStack[n-1].counter)
				} else {
					sb.WriteString("• ")
				}
			case "input":
				if _, checked := attrLookup(tok.Attr, "checked"); checked {
					sb.WriteString("☑ ")
				} else {
					sb.WriteString("☐ ")
				}
			case "h1", "h2", "h3", "h4", "h5", "h6":
				sb.WriteString("<b>")
			case "hr":
				sb.WriteString("\n————————\n")
			case "table":
				sb.WriteString("<pre>")
				inTable = true
			case "tr":
				cellIndex = 0
			case "th", "td":
				if cellIndex > 0 {
					sb.WriteString(" | ")
				}
				cellIndex++
			}

		case html.EndTagToken:
			switch tok.Data {
			case "b", "strong":
				sb.WriteString("</b>")
			case "i", "em":
				sb.WriteString("</i>")
			case "u", "ins":
				sb.WriteString("</u>")
			case "s", "strike", "del":
				sb.WriteString("</s>")
			case "code":
				if !inPre && !inTable {
					sb.WriteString("</code>")
				}
			case "pre":
				inPre = false
				sb.WriteString("</pre>")
			case "a":
				sb.WriteString("</a>")
			case "blockquote":
				trimNewlines(&sb)
				sb.WriteString("</blockquote>")
			case "p":
				sb.WriteString("\n\n")
			case "ul", "ol":
				if len(listStack) > 0 {
					listStack = listStack[:len(listStack)-1]
				}
				sb.WriteString("\n")
			case "h1", "h2", "h3", "h4", "h5", "h6":
				sb.WriteString("</b>\n\n")
			case "tr":
				sb.WriteString("\n")
			case "table":
				inTable = false
				sb.WriteString("</pre>\n")
			}
		}
	}

	result := strings.TrimSpace(sb.String())
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return result
}

func trimNewlines(sb *strings.Builder) {
	s := strings.TrimRight(sb.String(), "\n")
	sb.Reset()
	sb.WriteString(s)
}

func attrVal(attrs []html.Attribute, name string) string {
	v, _ := attrLookup(attrs, name)
	return v
}

func attrLookup(attrs []html.Attribute, name string) (string, bool) {
	for _, a := range attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
