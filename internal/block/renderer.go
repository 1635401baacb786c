// Package block 逐行扫描文档，识别块级结构并分派给行内解析器或表格渲染器
package block

import (
	"strings"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/escape"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/inline"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/table"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/types"
)

// Renderer 把整篇 Markdown 渲染为 MarkdownV2
//
// Renderer 本身不保存跨调用的状态，可以被多个 goroutine 同时使用。
type Renderer struct {
	symbols *types.Symbol
}

// NewRenderer 创建 Renderer，config 为 nil 时使用默认配置
func NewRenderer(config *types.RenderConfig) *Renderer {
	if config == nil || config.MarkdownSymbol == nil {
		config = types.DefaultRenderConfig()
	}
	return &Renderer{symbols: config.MarkdownSymbol}
}

// Classified 是 Scan 的输出：原始行及其分类
type Classified struct {
	Line  Line
	Block BlockLine
}

// Scan 逐行分类整篇文档
//
// 唯一的状态是是否处于 ``` 代码块内；未闭合的代码块一直延续到文档末尾。
// 表格区域内的每一行（包括分隔行）都标记为 TableRow。
func Scan(text string) []Classified {
	lines := SplitLines(text)
	out := make([]Classified, 0, len(lines))

	insideFence := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if IsFence(line.Content) {
			insideFence = !insideFence
			out = append(out, Classified{Line: line, Block: BlockLine{Kind: FenceDelimiter, Text: line.Content}})
			continue
		}

		if insideFence {
			out = append(out, Classified{Line: line, Block: BlockLine{Kind: CodeLine, Text: line.Content}})
			continue
		}

		if n := tableRunLength(lines, i); n > 0 {
			for j := i; j < i+n; j++ {
				out = append(out, Classified{Line: lines[j], Block: BlockLine{Kind: TableRow, Text: lines[j].Content}})
			}
			i += n - 1
			continue
		}

		out = append(out, Classified{Line: line, Block: Classify(line.Content)})
	}
	return out
}

// Render 渲染文档，原有的换行符原样保留
func (r *Renderer) Render(text string) string {
	scanned := Scan(text)

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/4)

	for i := 0; i < len(scanned); i++ {
		item := scanned[i]
		if item.Block.Kind != TableRow {
			sb.WriteString(r.RenderLine(item.Block))
			sb.WriteString(item.Line.Terminator)
			continue
		}

		raw := []string{item.Line.Content}
		for i+1 < len(scanned) && scanned[i+1].Block.Kind == TableRow {
			i++
			raw = append(raw, scanned[i].Line.Content)
		}
		sb.WriteString(table.RenderLines(raw, item.Line.Terminator))
		sb.WriteString(scanned[i].Line.Terminator)
	}

	return sb.String()
}

// tableRunLength 返回从 lines[i] 开始的表格行数，不是表格时返回 0
//
// 当前行含 | 且下一行是分隔行时视为表头，之后连续含 | 的行都属于该表格。
func tableRunLength(lines []Line, i int) int {
	if !strings.Contains(lines[i].Content, "|") || i+1 >= len(lines) {
		return 0
	}
	if !table.IsSeparatorRow(lines[i+1].Content) {
		return 0
	}
	end := i + 2
	for end < len(lines) && strings.Contains(lines[end].Content, "|") {
		end++
	}
	return end - i
}

// RenderLine 渲染单个已分类的行（不含换行符）
func (r *Renderer) RenderLine(bl BlockLine) string {
	switch bl.Kind {
	case Heading1:
		return "__*" + r.headingPrefix(r.symbols.HeadingLevel1) + inline.Format(bl.Text) + "*__"
	case Heading2:
		return "*" + r.headingPrefix(r.symbols.HeadingLevel2) + inline.Format(bl.Text) + "*"
	case Heading3:
		return "*" + r.headingPrefix(r.symbols.HeadingLevel3) + inline.Format(bl.Text) + "*"
	case Blockquote:
		return ">" + inline.Format(bl.Text)
	case HorizontalRule:
		return escape.EscapeText(r.symbols.HorizontalRule)
	case ListItem:
		return r.renderListItem(bl)
	case FenceDelimiter:
		return bl.Text
	case CodeLine:
		return escape.EscapeCode(bl.Text)
	default:
		return inline.Format(bl.Text)
	}
}

func (r *Renderer) headingPrefix(symbol string) string {
	if symbol == "" {
		return ""
	}
	return escape.EscapeText(symbol) + " "
}

func (r *Renderer) renderListItem(bl BlockLine) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", bl.Level))
	sb.WriteString(escape.EscapeText(r.symbols.Bullet(bl.Level)))
	sb.WriteString(" ")

	switch bl.Checkbox {
	case Checked:
		sb.WriteString(escape.EscapeText(r.symbols.TaskCompleted))
		sb.WriteString(" ")
	case Unchecked:
		sb.WriteString(escape.EscapeText(r.symbols.TaskUncompleted))
		sb.WriteString(" ")
	}

	sb.WriteString(inline.Format(bl.Text))
	return sb.String()
}
