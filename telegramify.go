// Package tgmd 将 Markdown 文本转换为 Telegram MarkdownV2 并拆分为可发送的消息
//
// 核心功能：
//   - 转义 MarkdownV2 保留字符
//   - 识别标题、强调、代码、链接、列表、引用、分隔线和表格并转换为 MarkdownV2
//   - 根据 Telegram 的 MessageEntity（UTF-16 偏移量）还原 Markdown 标记
//   - 按行拆分长消息，单行超长时硬切
//
// 主要 API：
//   - Transform(): 转换为 MarkdownV2 文本
//   - Split(): 拆分为不超过限制的片段
//   - Telegramify(): Transform + Split
//
// 示例：
//
//	// 简单转换
//	out := tgmd.Transform("**bold** text", nil)
//
//	// 带实体的转换和拆分
//	chunks := tgmd.Telegramify(msg.Text, entities, tgmd.DefaultLimit)
//	for _, chunk := range chunks {
//	    // 以 parse_mode=MarkdownV2 发送
//	}
//
// 所有函数都是纯函数，可以在多个 goroutine 中并发调用。
package tgmd

// Telegramify 将 Markdown 转换为 MarkdownV2 并按 maxMessageLength 拆分
//
// 参数：
//   - text: 原始 Markdown 文本
//   - entities: 来源消息附带的实体，可为 nil
//   - maxMessageLength: 每条消息的最大长度，<= 0 时使用 DefaultLimit
//   - opts: 转换选项
//
// 返回：
//   - []string: 按顺序排列的消息片段，拼接后等于 Transform 的结果
func Telegramify(text string, entities []Entity, maxMessageLength int, opts ...Option) []string {
	return ProcessMarkdown(text, entities, maxMessageLength, opts...)
}
