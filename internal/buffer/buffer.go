package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/util"
)

// Unit 选择长度的计量单位
type Unit int

const (
	// CodePoints 按 Unicode code point 计数
	CodePoints Unit = iota
	// UTF16 按 UTF-16 code units 计数（Telegram 的计量方式）
	UTF16
)

// Measure 返回 text 在指定单位下的长度
func (u Unit) Measure(text string) int {
	if u == UTF16 {
		return util.UTF16Len(text)
	}
	return utf8.RuneCountInString(text)
}

// RuneSize 返回单个 code point 在指定单位下的长度
func (u Unit) RuneSize(r rune) int {
	if u == UTF16 {
		return util.UTF16Width(r)
	}
	return 1
}

// TextBuffer 累积文本并记录当前长度
type TextBuffer struct {
	sb     strings.Builder
	unit   Unit
	length int
}

// New creates a new TextBuffer measuring in the given unit.
func New(unit Unit) *TextBuffer {
	return &TextBuffer{unit: unit}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.sb.WriteString(text)
	tb.length += tb.unit.Measure(text)
}

// Len 返回已写入内容的长度
func (tb *TextBuffer) Len() int {
	return tb.length
}

// Empty reports whether nothing has been written since the last reset.
func (tb *TextBuffer) Empty() bool {
	return tb.sb.Len() == 0
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}

// Flush 返回已累积的文本并清空缓冲区
func (tb *TextBuffer) Flush() string {
	s := tb.sb.String()
	tb.Reset()
	return s
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.sb.Reset()
	tb.length = 0
}
