package tgmd

import (
	"unicode/utf8"
)

// CountText 计算文本在拆分时的长度（code points）
//
// Split 按 code point 计数；Telegram 自身按 UTF-16 计数，需要时使用 UTF16Len。
//
// 参数：
//   - text: 要计数的文本
//
// 返回：
//   - int: code point 数量
func CountText(text string) int {
	return utf8.RuneCountInString(text)
}
