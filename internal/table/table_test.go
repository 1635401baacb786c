package table_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/table"
)

func TestIsSeparatorRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"|---|---|", true},
		{"| :--- | ---: |", true},
		{"---|---", true},
		{"| :-: |", true},
		{"---", false},
		{"| a | b |", false},
		{"|   |", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.IsSeparatorRow(tt.line), "line %q", tt.line)
	}
}

func TestParseCells(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, table.ParseCells("| a | b |"))
	assert.Equal(t, []string{"a", "b"}, table.ParseCells("a|b"))
	assert.Equal(t, []string{"**bold**", "x"}, table.ParseCells("| **bold** | x |"))
	assert.Equal(t, []string{"docs", "[site](https://ex.com/a)"}, table.ParseCells("| docs | [site](https://ex.com/a) |"))
	assert.Equal(t, []string{"", "y"}, table.ParseCells("|  | y |"))
}

func TestParse_DropsSeparatorAndPadsShortRows(t *testing.T) {
	t.Parallel()

	rows := table.Parse([]string{
		"| Name | Age |",
		"|------|-----|",
		"| Alice | 30 |",
		"| Bob |",
	})
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Age"}, rows[0])
	assert.Equal(t, []string{"Bob"}, rows[2])
	assert.Equal(t, []int{5, 3}, table.ColumnWidths(rows))
}

func TestRender_TwoByTwo(t *testing.T) {
	t.Parallel()

	out := table.RenderLines([]string{
		"| Name | Age |",
		"|---|---|",
		"| Alice | 30 |",
		"| Bob | 7 |",
	}, "\n")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "```", lines[0])
	assert.Equal(t, "Name  | Age", lines[1])
	assert.Equal(t, "----- | ---", lines[2])
	assert.Equal(t, "Alice | 30 ", lines[3])
	assert.Equal(t, "Bob   | 7  ", lines[4])
	assert.Equal(t, "```", lines[5])

	// 每列分隔符长度等于列宽
	widths := []int{5, 3}
	for i, seg := range strings.Split(lines[2], " | ") {
		assert.Equal(t, strings.Repeat("-", widths[i]), seg)
	}
	// 每行单元格数等于列数
	for _, line := range lines[1:5] {
		assert.Len(t, strings.Split(line, " | "), 2)
	}
}

func TestRender_ShortRowPadded(t *testing.T) {
	t.Parallel()

	out := table.Render([][]string{{"a", "b"}, {"c"}}, "\n")
	assert.Contains(t, out, "c | ")
}

func TestRender_EscapesCodeCharacters(t *testing.T) {
	t.Parallel()

	out := table.Render([][]string{{`C:\tmp`}, {"x"}}, "\n")
	assert.Contains(t, out, `C:\\tmp`)
}

func TestRender_CRLF(t *testing.T) {
	t.Parallel()

	out := table.Render([][]string{{"h"}, {"v"}}, "\r\n")
	assert.Equal(t, "```\r\nh\r\n-\r\nv\r\n```", out)
}

func TestRender_WideCharacters(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"名字", "x"}, {"ab", "y"}}
	assert.Equal(t, []int{4, 1}, table.ColumnWidths(rows))
	assert.Equal(t, "", table.Render(nil, "\n"))
}

func TestRenderLines_KeepsLinkTarget(t *testing.T) {
	t.Parallel()

	got := table.RenderLines([]string{
		"| name | link |",
		"|---|---|",
		"| docs | [site](https://ex.com/a) |",
	}, "\n")

	want := "```\n" +
		"name | link                    \n" +
		"---- | ------------------------\n" +
		"docs | [site](https://ex.com/a)\n" +
		"```"
	assert.Equal(t, want, got)
}
