// Package table 把 Markdown 表格渲染为等宽对齐的代码块
//
// Telegram 没有原生表格，这里把表格降级为 pre 块，用空格填充保证列对齐。
package table

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/escape"
)

// Fence 是包裹表格的代码块定界符
const Fence = "```"

var separatorRowRe = regexp.MustCompile(`^\s*\|?\s*:?-+:?\s*(\|\s*:?-+:?\s*)*\|?\s*$`)

// IsSeparatorRow 判断一行是否为表头下方的分隔行，如 |---|:--:|
func IsSeparatorRow(line string) bool {
	return strings.Contains(line, "|") && separatorRowRe.MatchString(line)
}

// ParseCells 拆分一行表格为单元格
//
// 单元格保留去掉首尾空白后的原文（包括 ** 和链接目标），表格整体在代码块中输出。
func ParseCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// Parse 解析连续的表格行，丢弃第二行的分隔行
func Parse(lines []string) [][]string {
	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		if i == 1 && IsSeparatorRow(line) {
			continue
		}
		rows = append(rows, ParseCells(line))
	}
	return rows
}

// ColumnWidths 计算每列宽度：该列所有单元格显示宽度的最大值
//
// 宽度按终端显示宽度（go-runewidth）计算，而不是字符数：窄字符计 1，
// 中日韩等全角字符计 2，因此分隔行中每个全角字符对应两个 -。
func ColumnWidths(rows [][]string) []int {
	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render 输出对齐后的表格，首行之后插入由 - 组成的分隔行
//
// newline 是行之间使用的换行符，保持与原文一致。返回值不带结尾换行。
func Render(rows [][]string, newline string) string {
	if len(rows) == 0 {
		return ""
	}
	if newline == "" {
		newline = "\n"
	}

	widths := ColumnWidths(rows)
	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, Fence)

	for rowIdx, row := range rows {
		cells := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Left-justify
			cells[i] = cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		}
		lines = append(lines, escape.EscapeCode(strings.Join(cells, " | ")))

		if rowIdx == 0 {
			lines = append(lines, Divider(widths))
		}
	}

	lines = append(lines, Fence)
	return strings.Join(lines, newline)
}

// Divider 返回每列宽度个 - 组成的分隔行
func Divider(widths []int) string {
	sepCells := make([]string, len(widths))
	for i, w := range widths {
		sepCells[i] = strings.Repeat("-", w)
	}
	return strings.Join(sepCells, " | ")
}

// RenderLines 解析并渲染原始表格行
func RenderLines(lines []string, newline string) string {
	return Render(Parse(lines), newline)
}
