package tgmd

import (
	"github.com/nicksan4ez/Markdown-tg-bot/internal/block"
)

// Transform 将 Markdown 转换为 Telegram MarkdownV2
//
// 参数:
//   - text: 原始 Markdown 文本
//   - entities: 来源消息附带的实体，为空时不做还原
//   - opts: 转换选项
//
// 返回:
//   - string: 完全转义后的 MarkdownV2 文本，换行符与输入一致
func Transform(text string, entities []Entity, opts ...Option) string {
	return transform(text, entities, applyOptions(opts...))
}

// TransformWithConfig 使用指定的渲染配置转换，config 为 nil 时使用默认配置
func TransformWithConfig(text string, entities []Entity, config *RenderConfig) string {
	return Transform(text, entities, WithConfig(config))
}

func transform(text string, entities []Entity, options *ConvertOptions) string {
	if options.Reconstruct {
		text = Reconstruct(text, entities)
	}
	return block.NewRenderer(options.Config).Render(text)
}
