package block

import (
	"regexp"
	"strings"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/types"
)

// Kind 表示一行的块级类型
type Kind int

const (
	Plain Kind = iota
	Heading1
	Heading2
	Heading3
	ListItem
	Blockquote
	HorizontalRule
	FenceDelimiter
	CodeLine
	TableRow
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Heading1:
		return "heading1"
	case Heading2:
		return "heading2"
	case Heading3:
		return "heading3"
	case ListItem:
		return "list_item"
	case Blockquote:
		return "blockquote"
	case HorizontalRule:
		return "horizontal_rule"
	case FenceDelimiter:
		return "fence"
	case CodeLine:
		return "code"
	case TableRow:
		return "table_row"
	default:
		return "unknown"
	}
}

// Checkbox 是任务列表项的勾选状态
type Checkbox int

const (
	NoCheckbox Checkbox = iota
	Unchecked
	Checked
)

// BlockLine 是一行的分类结果，Text 是剩余待行内解析的文本
type BlockLine struct {
	Kind     Kind
	Level    int
	Checkbox Checkbox
	Text     string
}

const (
	fenceMarker = "```"
	ruleMarker  = "---"
	tabWidth    = 4
	indentStep  = 2
)

var listItemRe = regexp.MustCompile(`^([ \t]*)[-*][ \t]+(?:\[([ xX])\](?:[ \t]+|$))?(.*)$`)

// IsFence 判断一行是否为 ``` 代码块定界符
func IsFence(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), fenceMarker)
}

// Classify 根据行首前缀判断块级类型
//
// 代码块内部的行和表格行由 Renderer 根据上下文判断，这里只处理单行可判定的情况。
func Classify(content string) BlockLine {
	trimmed := strings.TrimSpace(content)

	switch {
	case strings.HasPrefix(trimmed, fenceMarker):
		return BlockLine{Kind: FenceDelimiter, Text: content}
	case trimmed == ruleMarker:
		return BlockLine{Kind: HorizontalRule}
	case strings.HasPrefix(content, "### "):
		return BlockLine{Kind: Heading3, Text: strings.TrimLeft(content[4:], " \t")}
	case strings.HasPrefix(content, "## "):
		return BlockLine{Kind: Heading2, Text: strings.TrimLeft(content[3:], " \t")}
	case strings.HasPrefix(content, "# "):
		return BlockLine{Kind: Heading1, Text: strings.TrimLeft(content[2:], " \t")}
	case strings.HasPrefix(content, "> "):
		return BlockLine{Kind: Blockquote, Text: content[2:]}
	}

	if m := listItemRe.FindStringSubmatch(content); m != nil {
		item := BlockLine{Kind: ListItem, Level: ListLevel(m[1]), Text: m[3]}
		switch m[2] {
		case "x", "X":
			item.Checkbox = Checked
		case " ":
			item.Checkbox = Unchecked
		}
		return item
	}

	return BlockLine{Kind: Plain, Text: content}
}

// ListLevel 把缩进换算为嵌套层级：tab 记 4 个空格，每 2 列一级，最多 MaxListLevel
func ListLevel(indent string) int {
	width := 0
	for _, ch := range indent {
		if ch == '\t' {
			width += tabWidth
		} else {
			width++
		}
	}
	level := width / indentStep
	if level > types.MaxListLevel {
		level = types.MaxListLevel
	}
	return level
}
