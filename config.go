package tgmd

import (
	"sync"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/types"
)

// 导出类型别名
type Symbol = types.Symbol
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// The returned value is shared; copy it before changing symbols.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// NewConfig returns a fresh default configuration that callers may modify.
func NewConfig() *RenderConfig {
	return types.DefaultRenderConfig()
}
