package util

// UTF16Width 返回一个 code point 占用的 UTF-16 code units 数
func UTF16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += UTF16Width(r)
	}
	return count
}

// UTF16ToRuneIndex 将 UTF-16 偏移量转换为 code point 下标
//
// 逐个 code point 累加宽度，超出 BMP 的字符算 2 个单位。超出文本末尾的偏移量
// 被截断到 len(runes)；落在代理对中间的偏移量向后取整到该字符之后。
func UTF16ToRuneIndex(runes []rune, offset int) int {
	if offset <= 0 {
		return 0
	}
	units := 0
	for i, r := range runes {
		if units >= offset {
			return i
		}
		units += UTF16Width(r)
	}
	return len(runes)
}
