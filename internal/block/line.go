package block

// Line 是去掉换行符后的一行内容，Terminator 记录原始换行符
// （"\n"、"\r"、"\r\n"，最后一行可能为空）
type Line struct {
	Content    string
	Terminator string
}

// String 返回带原始换行符的整行
func (l Line) String() string {
	return l.Content + l.Terminator
}

// SplitLines 按 \n、\r、\r\n 分行并保留换行符，拼接所有行可还原原文
func SplitLines(text string) []Line {
	lines := make([]Line, 0)
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, Line{Content: text[start:i], Terminator: "\n"})
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				lines = append(lines, Line{Content: text[start:i], Terminator: "\r\n"})
				i++
			} else {
				lines = append(lines, Line{Content: text[start:i], Terminator: "\r"})
			}
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, Line{Content: text[start:]})
	}
	return lines
}
