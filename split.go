package tgmd

import (
	"github.com/nicksan4ez/Markdown-tg-bot/internal/block"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/buffer"
)

// DefaultLimit 是 Telegram 单条消息的最大长度
const DefaultLimit = 4096

// Split 将文本拆分为不超过 limit 个 code point 的片段
//
// 尽量在行边界拆分：整行累积到缓冲区，放不下时输出缓冲区；
// 单行本身超过 limit 时按 limit 硬切。拼接所有片段等于原文，
// 不会产生空片段，空文本返回空切片。limit < 1 时使用 DefaultLimit。
func Split(text string, limit int) []string {
	return splitText(text, limit, buffer.CodePoints)
}

// SplitUTF16 与 Split 相同，但按 UTF-16 code units 计量
//
// 硬切不会拆开代理对，因此当 limit 为 1 时，补充平面字符会单独成为
// 长度为 2 的片段。
func SplitUTF16(text string, limit int) []string {
	return splitText(text, limit, buffer.UTF16)
}

func splitText(text string, limit int, unit buffer.Unit) []string {
	if limit < 1 {
		limit = DefaultLimit
	}

	chunks := make([]string, 0)
	buf := buffer.New(unit)

	for _, line := range block.SplitLines(text) {
		s := line.String()
		n := unit.Measure(s)

		if buf.Len()+n <= limit {
			buf.Write(s)
			continue
		}
		if !buf.Empty() {
			chunks = append(chunks, buf.Flush())
		}
		if n <= limit {
			buf.Write(s)
			continue
		}
		chunks = append(chunks, hardSplit(s, limit, unit)...)
	}

	if !buf.Empty() {
		chunks = append(chunks, buf.Flush())
	}
	return chunks
}

// hardSplit 按 limit 切分单个超长行，只在 code point 边界切分
func hardSplit(s string, limit int, unit buffer.Unit) []string {
	pieces := make([]string, 0, unit.Measure(s)/limit+1)
	start, size := 0, 0

	for i, r := range s {
		w := unit.RuneSize(r)
		if size+w > limit && i > start {
			pieces = append(pieces, s[start:i])
			start, size = i, 0
		}
		size += w
	}
	if start < len(s) {
		pieces = append(pieces, s[start:])
	}
	return pieces
}
