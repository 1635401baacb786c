// Package escape 实现 Telegram MarkdownV2 的转义规则
//
// MarkdownV2 对三种上下文有不同的要求：普通文本、链接目标和代码块/行内代码。
// 这里的函数都是纯函数，单次遍历完成转义。
package escape

import (
	"strings"
)

// ReservedChars 是 MarkdownV2 普通文本中必须转义的字符集合
const ReservedChars = "_*[]()~`>#+-=|{}.!\\"

var (
	textReplacer = newReplacer(ReservedChars)
	urlReplacer  = newReplacer(`)\`)
	codeReplacer = newReplacer("`\\")
)

func newReplacer(chars string) *strings.Replacer {
	pairs := make([]string, 0, len(chars)*2)
	for _, ch := range chars {
		pairs = append(pairs, string(ch), `\`+string(ch))
	}
	return strings.NewReplacer(pairs...)
}

// EscapeText 为 ReservedChars 中的每个字符加上反斜杠前缀
//
// 注意：不是幂等的，对已转义的文本再次调用会重复转义。
func EscapeText(s string) string {
	return textReplacer.Replace(s)
}

// EscapeURL 只转义 `)` 和 `\`，用于 [text](url) 中的 url 部分
func EscapeURL(s string) string {
	return urlReplacer.Replace(s)
}

// EscapeCode 只转义 `\` 和反引号，用于 pre / code 中的内容
func EscapeCode(s string) string {
	return codeReplacer.Replace(s)
}
