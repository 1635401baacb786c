package tgmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_Empty 测试空文本返回空切片
func TestSplit_Empty(t *testing.T) {
	chunks := Split("", 10)
	assert.NotNil(t, chunks)
	assert.Empty(t, chunks)
}

// TestSplit_NoSplitNeeded 测试不需要拆分的情况
func TestSplit_NoSplitNeeded(t *testing.T) {
	assert.Equal(t, []string{"hello\nworld"}, Split("hello\nworld", 100))
}

// TestSplit_LineBoundaries 测试在行边界拆分
func TestSplit_LineBoundaries(t *testing.T) {
	chunks := Split("aaa\nbbb\nccc\n", 8)
	assert.Equal(t, []string{"aaa\nbbb\n", "ccc\n"}, chunks)
}

// TestSplit_OversizedLine 测试单行超长时硬切
func TestSplit_OversizedLine(t *testing.T) {
	chunks := Split("ab\n"+strings.Repeat("x", 10)+"\ncd", 4)
	assert.Equal(t, []string{"ab\n", "xxxx", "xxxx", "xxx\n", "cd"}, chunks)
}

// TestSplit_MultiByteNotBroken 测试硬切不会拆开多字节字符
func TestSplit_MultiByteNotBroken(t *testing.T) {
	text := strings.Repeat("你好📌", 5)
	chunks := Split(text, 4)
	for _, c := range chunks {
		assert.True(t, len([]rune(c)) <= 4)
		assert.True(t, strings.ToValidUTF8(c, "?") == c, "chunk %q is not valid UTF-8", c)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

// TestSplit_InvalidLimitUsesDefault 测试非法 limit 回退到默认值
func TestSplit_InvalidLimitUsesDefault(t *testing.T) {
	text := strings.Repeat("a", DefaultLimit+1)
	chunks := Split(text, 0)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], DefaultLimit)
}

// TestSplit_Properties 测试拼接还原、长度上限和非空
func TestSplit_Properties(t *testing.T) {
	inputs := []string{
		"a",
		"\n",
		"\n\n\n",
		"line one\r\nline two\rline three\n",
		strings.Repeat("word ", 300),
		strings.Repeat("short\n", 50) + strings.Repeat("y", 77) + "\nend",
		"emoji 📌📌📌 and 中文\n" + strings.Repeat("🇺🇸", 20),
	}
	for _, in := range inputs {
		for _, limit := range []int{1, 2, 3, 7, 16, 100, 4096} {
			chunks := Split(in, limit)
			assert.Equal(t, in, strings.Join(chunks, ""), "limit %d", limit)
			for _, c := range chunks {
				assert.NotEmpty(t, c)
				assert.LessOrEqual(t, CountText(c), limit)
			}
		}
	}
}

// TestSplitUTF16 测试按 UTF-16 计量
func TestSplitUTF16(t *testing.T) {
	text := "📌📌📌"
	chunks := SplitUTF16(text, 4)
	assert.Equal(t, []string{"📌📌", "📌"}, chunks)

	// limit 为 1 时代理对不会被拆开
	chunks = SplitUTF16("a📌", 1)
	assert.Equal(t, []string{"a", "📌"}, chunks)
}

// TestCountText 测试 code point 计数
func TestCountText(t *testing.T) {
	assert.Equal(t, 0, CountText(""))
	assert.Equal(t, 3, CountText("a📌b"))
}
