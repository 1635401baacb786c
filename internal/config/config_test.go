package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "WEBHOOK_SECRET", "BASE_URL", "LISTEN_ADDR",
		"MAX_MESSAGE_LENGTH", "LOG_LEVEL", "SEND_RATE", "SEND_BURST",
		"FAILURE_POLICY", "SYMBOLS_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	t.Setenv("BASE_URL", "https://bot.example.com/")
	t.Setenv("MAX_MESSAGE_LENGTH", "1000")

	cfg, err := config.Load(config.LoadOptions{EnvFile: ""})
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "s3cret", cfg.WebhookSecret)
	assert.Equal(t, "https://bot.example.com", cfg.BaseURL)
	assert.Equal(t, 1000, cfg.MaxMessageLength)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "stop", cfg.FailurePolicy)
	assert.Equal(t, "https://bot.example.com/telegram/webhook", cfg.WebhookURL("/telegram/webhook"))
}

func TestLoad_EnvFileWithOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BOT_TOKEN=from-file\nWEBHOOK_SECRET=file-secret\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("WEBHOOK_SECRET", "env-secret")

	cfg, err := config.Load(config.LoadOptions{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.BotToken)
	assert.Equal(t, "env-secret", cfg.WebhookSecret)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBHOOK_SECRET", "x")

	_, err := config.Load(config.LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingValue)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_SkipValidation(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(config.LoadOptions{SkipValidation: true})
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.MaxMessageLength)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(config.LoadOptions{EnvFile: filepath.Join(t.TempDir(), "nope.env")})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		BotToken:         "t",
		WebhookSecret:    "s",
		MaxMessageLength: 4096,
		SendRate:         1,
		FailurePolicy:    "continue",
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.FailurePolicy = "retry"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.MaxMessageLength = 0
	assert.Error(t, bad.Validate())

	bad = valid
	bad.SendRate = 0
	assert.Error(t, bad.Validate())

	assert.Equal(t, "", valid.WebhookURL("/hook"))
}

func TestParseSymbols(t *testing.T) {
	t.Parallel()

	symbols, err := config.ParseSymbols([]byte(`
heading_level_1: "📌"
list_bullets: ["•", "-", "+", "*"]
task_completed: "✅"
`))
	require.NoError(t, err)
	assert.Equal(t, "📌", symbols.HeadingLevel1)
	assert.Equal(t, "•", symbols.Bullet(0))
	assert.Equal(t, "*", symbols.Bullet(9))
	assert.Equal(t, "✅", symbols.TaskCompleted)
	assert.Equal(t, "☐", symbols.TaskUncompleted)
}

func TestParseSymbols_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.ParseSymbols([]byte("heading_level_9: x\n"))
	assert.Error(t, err)
}

func TestRenderConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.RenderConfig("")
	require.NoError(t, err)
	assert.Equal(t, "⦁", cfg.MarkdownSymbol.Bullet(0))

	path := filepath.Join(t.TempDir(), "symbols.yaml")
	require.NoError(t, os.WriteFile(path, []byte("horizontal_rule: \"~~~\"\n"), 0o600))
	cfg, err = config.RenderConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "~~~", cfg.MarkdownSymbol.HorizontalRule)
}
