package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	tgmd "github.com/nicksan4ez/Markdown-tg-bot"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/htmlmode"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
)

// Outgoing is one message to render and send.
type Outgoing struct {
	ChatID    int64
	Text      string
	Entities  []tgmd.Entity
	RequestID string
}

// Result summarises a delivery.
type Result struct {
	Sent      int
	Failed    int
	ParseMode string
}

// Deliverer renders messages and sends them chunk by chunk.
type Deliverer struct {
	sender  Sender
	limiter *rate.Limiter
	limit   int
	policy  FailurePolicy
	convert []tgmd.Option
	logger  *log.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

// Option configures a Deliverer.
type Option func(*Deliverer)

// WithRate paces sends to rps messages per second with the given burst.
func WithRate(rps float64, burst int) Option {
	return func(d *Deliverer) {
		if rps <= 0 {
			d.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLimit sets the per-chunk length limit.
func WithLimit(limit int) Option {
	return func(d *Deliverer) {
		d.limit = limit
	}
}

// WithFailurePolicy sets what happens after a chunk fails.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(d *Deliverer) {
		d.policy = p
	}
}

// WithConvertOptions passes options through to the renderer.
func WithConvertOptions(opts ...tgmd.Option) Option {
	return func(d *Deliverer) {
		d.convert = append(d.convert, opts...)
	}
}

// WithLogger sets the logger used for delivery events.
func WithLogger(logger *log.Logger) Option {
	return func(d *Deliverer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDeliverer creates a Deliverer sending through s.
func NewDeliverer(s Sender, opts ...Option) *Deliverer {
	d := &Deliverer{
		sender:  s,
		limiter: rate.NewLimiter(rate.Limit(1), 3),
		limit:   tgmd.DefaultLimit,
		policy:  PolicyStop,
		logger:  logging.Default(),
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deliver renders out to MarkdownV2 and sends every chunk in order.
//
// When Telegram rejects the first chunk's formatting, the whole message is
// re-rendered as HTML and sent in that mode instead.
func (d *Deliverer) Deliver(ctx context.Context, out Outgoing) (Result, error) {
	// 请求级 logger（带 request_id）由调用方放在 ctx 中
	logger, ok := logging.Lookup(ctx)
	if !ok {
		logger = d.logger
		if out.RequestID != "" {
			logger = logger.With(logging.FieldRequestID, out.RequestID)
		}
	}
	logger = logger.With(logging.FieldChatID, out.ChatID)

	chunks := tgmd.Telegramify(out.Text, out.Entities, d.limit, d.convert...)
	res := Result{ParseMode: tgbotapi.ModeMarkdownV2}
	if len(chunks) == 0 {
		return res, nil
	}

	for i, chunk := range chunks {
		err := d.send(ctx, out.ChatID, chunk, tgbotapi.ModeMarkdownV2, logger)
		if err == nil {
			res.Sent++
			continue
		}
		if i == 0 && isParseError(err) {
			logger.Warn("markdown rejected, falling back to html", logging.FieldError, err)
			return d.deliverHTML(ctx, out, logger)
		}
		res.Failed++
		logger.Error("send chunk failed", logging.FieldChunk, i, logging.FieldError, err)
		if d.policy != PolicyContinue {
			return res, fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
	}

	logger.Info("delivered", logging.FieldChunks, res.Sent, logging.FieldParseMode, res.ParseMode)
	return res, nil
}

func (d *Deliverer) deliverHTML(ctx context.Context, out Outgoing, logger *log.Logger) (Result, error) {
	res := Result{ParseMode: tgbotapi.ModeHTML}
	source := tgmd.Reconstruct(out.Text, out.Entities)

	chunks := htmlChunks(source, d.limit)

	for i, chunk := range chunks {
		if err := d.send(ctx, out.ChatID, chunk, tgbotapi.ModeHTML, logger); err != nil {
			res.Failed++
			logger.Error("send html chunk failed", logging.FieldChunk, i, logging.FieldError, err)
			if d.policy != PolicyContinue {
				return res, fmt.Errorf("html chunk %d of %d: %w", i+1, len(chunks), err)
			}
			continue
		}
		res.Sent++
	}

	logger.Info("delivered", logging.FieldChunks, res.Sent, logging.FieldParseMode, res.ParseMode)
	return res, nil
}

// htmlChunks 按源文本拆分后逐段渲染为 HTML
//
// 渲染后的 HTML 从不被切分：某段渲染结果超过 limit 时，把这段源文本拆得
// 更细后重新渲染，因此任何标签都不会跨越两条消息。
func htmlChunks(source string, limit int) []string {
	if limit < 1 {
		limit = tgmd.DefaultLimit
	}
	var chunks []string
	for _, part := range tgmd.Split(source, limit) {
		chunks = append(chunks, renderHTMLPart(part, limit, limit)...)
	}
	return chunks
}

func renderHTMLPart(part string, sourceLimit, limit int) []string {
	rendered := htmlmode.Render(part)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	n := tgmd.CountText(part)
	if tgmd.CountText(rendered) <= limit || n <= 1 {
		return []string{rendered}
	}

	smaller := max(min(sourceLimit, n)/2, 1)
	var out []string
	for _, p := range tgmd.Split(part, smaller) {
		out = append(out, renderHTMLPart(p, smaller, limit)...)
	}
	return out
}

// send waits for the limiter and sends one chunk, retrying once when
// Telegram answers with retry_after.
func (d *Deliverer) send(ctx context.Context, chatID int64, text, mode string, logger *log.Logger) error {
	retried := false
	for {
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = mode
		msg.DisableWebPagePreview = true

		_, err := d.sender.Send(msg)
		if err == nil {
			return nil
		}

		wait := retryAfter(err)
		if wait <= 0 || retried {
			return err
		}
		retried = true
		logger.Warn("rate limited by telegram", logging.FieldRetryAfter, wait)
		if err := d.sleep(ctx, time.Duration(wait)*time.Second); err != nil {
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
