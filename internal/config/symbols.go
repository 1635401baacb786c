package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/types"
)

// LoadSymbols reads a YAML glyph file on top of the default symbols.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadSymbols(path string) (*types.Symbol, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read symbols file: %w", err)
	}
	return ParseSymbols(data)
}

// ParseSymbols decodes YAML glyph overrides.
func ParseSymbols(data []byte) (*types.Symbol, error) {
	symbols := types.DefaultSymbol()
	if len(bytes.TrimSpace(data)) == 0 {
		return symbols, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(symbols); err != nil {
		return nil, fmt.Errorf("parse symbols: %w", err)
	}
	return symbols, nil
}

// RenderConfig builds a render configuration, loading symbols from path
// when it is non-empty.
func RenderConfig(path string) (*types.RenderConfig, error) {
	cfg := types.DefaultRenderConfig()
	if path == "" {
		return cfg, nil
	}
	symbols, err := LoadSymbols(path)
	if err != nil {
		return nil, err
	}
	cfg.MarkdownSymbol = symbols
	return cfg, nil
}
