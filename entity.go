package tgmd

import (
	"slices"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/inline"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/types"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/util"
)

// 导出类型别名
type Entity = types.Entity
type EntityKind = types.EntityKind

const (
	EntityBold   = types.EntityBold
	EntityItalic = types.EntityItalic
	EntityCode   = types.EntityCode
	EntityPre    = types.EntityPre
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures entity offsets and lengths in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// insertion 是一次在 code point 位置插入标记的编辑
type insertion struct {
	pos    int
	marker string
}

// Reconstruct 根据实体在文本中插入 Markdown 标记
//
// 规则：
//   - 没有实体时原样返回
//   - 文本中已有字面的粗体/斜体标记时整体跳过，避免重复标记
//   - 类型不支持、偏移量或长度非法的实体被忽略
//   - 超出文本末尾的偏移量截断到末尾
//
// 所有插入按位置降序、标记长度降序排序后依次插入，前面的插入不会影响
// 尚未执行的插入位置。
func Reconstruct(text string, entities []Entity) string {
	if len(entities) == 0 {
		return text
	}
	if inline.HasEmphasis(text) {
		Logger.Debug("entity reconstruction skipped",
			logging.FieldReason, "text already contains emphasis markers",
			logging.FieldEntities, len(entities),
		)
		return text
	}

	runes := []rune(text)
	edits := make([]insertion, 0, len(entities)*2)

	for _, ent := range entities {
		if !ent.Valid() {
			Logger.Debug("skipping entity", logging.FieldEntity, ent)
			continue
		}
		start := util.UTF16ToRuneIndex(runes, ent.Offset)
		end := util.UTF16ToRuneIndex(runes, ent.Offset+ent.Length)
		if end <= start {
			continue
		}
		open, closing := entityMarkers(ent, runes, start, end)
		edits = append(edits, insertion{pos: start, marker: open}, insertion{pos: end, marker: closing})
	}

	return applyInsertions(runes, edits)
}

// applyInsertions 按位置降序、标记长度降序依次插入
func applyInsertions(runes []rune, edits []insertion) string {
	slices.SortStableFunc(edits, func(a, b insertion) int {
		if a.pos != b.pos {
			return b.pos - a.pos
		}
		return len(b.marker) - len(a.marker)
	})

	for _, e := range edits {
		runes = slices.Insert(runes, e.pos, []rune(e.marker)...)
	}
	return string(runes)
}

// entityMarkers 返回实体的开始和结束标记
//
// pre 使用 ``` 代码块，只有在不处于行首/行尾时才补充换行，
// 保证定界符独占一行。
func entityMarkers(ent Entity, runes []rune, start, end int) (string, string) {
	switch ent.Kind {
	case EntityBold:
		return "**", "**"
	case EntityItalic:
		return "*", "*"
	case EntityCode:
		return "`", "`"
	}

	open := "```" + ent.Language + "\n"
	if start > 0 && !isLineBreak(runes[start-1]) {
		open = "\n" + open
	}
	closing := "```"
	if !isLineBreak(runes[end-1]) {
		closing = "\n" + closing
	}
	if end < len(runes) && !isLineBreak(runes[end]) {
		closing += "\n"
	}
	return open, closing
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
