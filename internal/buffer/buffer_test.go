package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextBuffer_CodePoints(t *testing.T) {
	tb := New(CodePoints)
	assert.True(t, tb.Empty())

	tb.Write("ab")
	tb.Write("📌")
	assert.Equal(t, 3, tb.Len())
	assert.Equal(t, "ab📌", tb.String())

	assert.Equal(t, "ab📌", tb.Flush())
	assert.True(t, tb.Empty())
	assert.Equal(t, 0, tb.Len())
}

func TestTextBuffer_UTF16(t *testing.T) {
	tb := New(UTF16)
	tb.Write("ab📌")
	assert.Equal(t, 4, tb.Len())

	tb.Reset()
	assert.Equal(t, "", tb.String())
}

func TestUnit_RuneSize(t *testing.T) {
	assert.Equal(t, 1, CodePoints.RuneSize('📌'))
	assert.Equal(t, 2, UTF16.RuneSize('📌'))
	assert.Equal(t, 1, UTF16.RuneSize('a'))
}
