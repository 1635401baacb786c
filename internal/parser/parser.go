package parser

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// StandardOptions goldmark 扩展配置，只保留 Telegram HTML 能表达的部分
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Table,
		extension.TaskList,
	),
}

var (
	mdOnce sync.Once
	md     goldmark.Markdown
)

// Markdown 返回共享的 goldmark 实例（Convert 并发安全）
func Markdown() goldmark.Markdown {
	mdOnce.Do(func() {
		md = goldmark.New(StandardOptions...)
	})
	return md
}

// ToHTML 将 Markdown 转为 goldmark 标准 HTML
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := Markdown().Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

