// Package config loads the bot's process configuration.
//
// Values come from environment variables, optionally seeded by a .env file
// in the working directory. Environment variables always win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment keys.
const (
	KeyBotToken         = "bot_token"
	KeyWebhookSecret    = "webhook_secret"
	KeyBaseURL          = "base_url"
	KeyListenAddr       = "listen_addr"
	KeyMaxMessageLength = "max_message_length"
	KeyLogLevel         = "log_level"
	KeySendRate         = "send_rate"
	KeySendBurst        = "send_burst"
	KeyFailurePolicy    = "failure_policy"
	KeySymbolsFile      = "symbols_file"
)

// DefaultEnvFile is read when present; its absence is not an error.
const DefaultEnvFile = ".env"

// ErrMissingValue is returned when a required variable is unset.
var ErrMissingValue = errors.New("required configuration value is missing")

// Config is the resolved process configuration.
type Config struct {
	BotToken         string  `mapstructure:"bot_token"`
	WebhookSecret    string  `mapstructure:"webhook_secret"`
	BaseURL          string  `mapstructure:"base_url"`
	ListenAddr       string  `mapstructure:"listen_addr"`
	MaxMessageLength int     `mapstructure:"max_message_length"`
	LogLevel         string  `mapstructure:"log_level"`
	SendRate         float64 `mapstructure:"send_rate"`
	SendBurst        int     `mapstructure:"send_burst"`
	FailurePolicy    string  `mapstructure:"failure_policy"`
	SymbolsFile      string  `mapstructure:"symbols_file"`
}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// EnvFile overrides the .env path. Empty means DefaultEnvFile.
	EnvFile string
	// SkipValidation loads without checking required values (used by the
	// format command, which never talks to Telegram).
	SkipValidation bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyBotToken, "")
	v.SetDefault(KeyWebhookSecret, "")
	v.SetDefault(KeyBaseURL, "")
	v.SetDefault(KeyListenAddr, ":8080")
	v.SetDefault(KeyMaxMessageLength, 4096)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySendRate, 1.0)
	v.SetDefault(KeySendBurst, 3)
	v.SetDefault(KeyFailurePolicy, "stop")
	v.SetDefault(KeySymbolsFile, "")
}

// Load resolves configuration from the .env file and the environment.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	} else if opts.EnvFile != "" {
		return nil, fmt.Errorf("env file %s: %w", envFile, err)
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	if opts.SkipValidation {
		return &cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required values and ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return fmt.Errorf("environment variable BOT_TOKEN: %w", ErrMissingValue)
	}
	if strings.TrimSpace(c.WebhookSecret) == "" {
		return fmt.Errorf("environment variable WEBHOOK_SECRET: %w", ErrMissingValue)
	}
	if c.MaxMessageLength < 1 {
		return fmt.Errorf("MAX_MESSAGE_LENGTH must be positive, got %d", c.MaxMessageLength)
	}
	if c.SendRate <= 0 {
		return fmt.Errorf("SEND_RATE must be positive, got %v", c.SendRate)
	}
	switch strings.ToLower(c.FailurePolicy) {
	case "stop", "continue":
	default:
		return fmt.Errorf("FAILURE_POLICY must be stop or continue, got %q", c.FailurePolicy)
	}
	return nil
}

// WebhookURL returns the public URL Telegram should post updates to, or
// an empty string when BASE_URL is unset.
func (c *Config) WebhookURL(path string) string {
	if c.BaseURL == "" {
		return ""
	}
	return c.BaseURL + path
}
