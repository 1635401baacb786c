// Package telegram delivers rendered chunks through the Bot API.
package telegram

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the subset of tgbotapi.BotAPI used for delivery, so tests can
// substitute a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Requester is the subset of tgbotapi.BotAPI used for raw method calls.
type Requester interface {
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

// ErrParseEntities marks a MarkdownV2 chunk Telegram refused to parse.
var ErrParseEntities = errors.New("telegram rejected markdown entities")

// FailurePolicy decides what happens after a chunk fails to send.
type FailurePolicy string

const (
	// PolicyStop abandons the remaining chunks.
	PolicyStop FailurePolicy = "stop"
	// PolicyContinue logs the failure and sends the rest.
	PolicyContinue FailurePolicy = "continue"
)

// ParseFailurePolicy maps a config value to a FailurePolicy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStop:
		return PolicyStop, nil
	case PolicyContinue:
		return PolicyContinue, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q", s)
	}
}

// retryAfter reports the flood-wait Telegram asked for, in seconds.
func retryAfter(err error) int {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.RetryAfter
	}
	return 0
}

// isParseError reports whether Telegram refused the chunk's formatting.
func isParseError(err error) bool {
	if errors.Is(err, ErrParseEntities) {
		return true
	}
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return strings.Contains(strings.ToLower(apiErr.Message), "can't parse entities")
	}
	return strings.Contains(strings.ToLower(err.Error()), "can't parse entities")
}

// RegisterWebhook points the bot's webhook at url and sets the secret
// token Telegram echoes in X-Telegram-Bot-Api-Secret-Token.
func RegisterWebhook(r Requester, url, secret string) error {
	if url == "" {
		return errors.New("webhook url is empty")
	}
	params := tgbotapi.Params{"url": url}
	if secret != "" {
		params["secret_token"] = secret
	}
	resp, err := r.MakeRequest("setWebhook", params)
	if err != nil {
		return fmt.Errorf("setWebhook: %w", err)
	}
	if resp != nil && !resp.Ok {
		return fmt.Errorf("setWebhook: %s", resp.Description)
	}
	return nil
}
