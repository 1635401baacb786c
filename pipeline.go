package tgmd

import (
	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
)

// ProcessMarkdown 完整管道：实体还原 → 块级/行内渲染 → 拆分
//
// 拆分的计量单位由 WithUTF16Limit 决定，默认按 code point 计数。
func ProcessMarkdown(text string, entities []Entity, maxMessageLength int, opts ...Option) []string {
	options := applyOptions(opts...)
	rendered := transform(text, entities, options)

	var chunks []string
	if options.UTF16Limit {
		chunks = SplitUTF16(rendered, maxMessageLength)
	} else {
		chunks = Split(rendered, maxMessageLength)
	}

	Logger.Debug("processed markdown",
		logging.FieldChunks, len(chunks),
		logging.FieldLimit, maxMessageLength,
	)
	return chunks
}
