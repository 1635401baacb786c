package inline

// Kind 表示行内 token 的类型
type Kind int

const (
	// PlainRun 普通文本，渲染时整体转义
	PlainRun Kind = iota
	// Link [display](target)
	Link
	// CodeSpan `code`
	CodeSpan
	// BoldItalic ***text***
	BoldItalic
	// Bold **text**
	Bold
	// Italic *text*
	Italic
	// BareURL 裸露的 http(s) 链接
	BareURL
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case PlainRun:
		return "plain"
	case Link:
		return "link"
	case CodeSpan:
		return "code"
	case BoldItalic:
		return "bold_italic"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BareURL:
		return "url"
	default:
		return "unknown"
	}
}

// IsEmphasis reports whether the kind is one of the asterisk-delimited forms.
func (k Kind) IsEmphasis() bool {
	return k == Bold || k == Italic || k == BoldItalic
}

// Token 是 Tokenize 的输出单元
//
// Text 保存去掉定界符后的内容：链接的显示文本、代码内容、强调内容、
// 裸链接的 URL 或普通文本。Target 只对 Link 有意义。
type Token struct {
	Kind   Kind
	Text   string
	Target string
}
