package types

// EntityKind 对应 Telegram MessageEntity 的 type 字段
type EntityKind string

const (
	EntityBold   EntityKind = "bold"
	EntityItalic EntityKind = "italic"
	EntityCode   EntityKind = "code"
	EntityPre    EntityKind = "pre"
)

// Supported 判断实体类型是否能被还原为 Markdown
func (k EntityKind) Supported() bool {
	switch k {
	case EntityBold, EntityItalic, EntityCode, EntityPre:
		return true
	}
	return false
}

// Entity 表示来源平台附带的富文本区间
//
// Offset 和 Length 以 UTF-16 code units 计，与 Telegram Bot API 一致。
type Entity struct {
	Kind     EntityKind `json:"type"`
	Offset   int        `json:"offset"`
	Length   int        `json:"length"`
	Language string     `json:"language,omitempty"`
}

// Valid reports whether the entity can take part in reconstruction.
func (e Entity) Valid() bool {
	return e.Kind.Supported() && e.Offset >= 0 && e.Length > 0
}

// MaxListLevel 是列表支持的最大嵌套层级（从 0 开始）
const MaxListLevel = 3

// Symbol 定义渲染时使用的符号
type Symbol struct {
	HeadingLevel1   string                   `yaml:"heading_level_1"`
	HeadingLevel2   string                   `yaml:"heading_level_2"`
	HeadingLevel3   string                   `yaml:"heading_level_3"`
	ListBullets     [MaxListLevel + 1]string `yaml:"list_bullets"`
	TaskCompleted   string                   `yaml:"task_completed"`
	TaskUncompleted string                   `yaml:"task_uncompleted"`
	HorizontalRule  string                   `yaml:"horizontal_rule"`
}

// DefaultSymbol 返回默认符号配置
//
// 标题默认不加前缀符号，输出与纯 MarkdownV2 标题一致。
func DefaultSymbol() *Symbol {
	return &Symbol{
		ListBullets:     [MaxListLevel + 1]string{"⦁", "◦", "▪", "▫"},
		TaskCompleted:   "☑",
		TaskUncompleted: "☐",
		HorizontalRule:  "————————",
	}
}

// Bullet 返回指定层级的列表符号
func (s *Symbol) Bullet(level int) string {
	if level < 0 {
		level = 0
	}
	if level > MaxListLevel {
		level = MaxListLevel
	}
	return s.ListBullets[level]
}

// RenderConfig 渲染配置
type RenderConfig struct {
	MarkdownSymbol *Symbol
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MarkdownSymbol: DefaultSymbol(),
	}
}
