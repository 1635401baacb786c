package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	tgmd "github.com/nicksan4ez/Markdown-tg-bot"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/config"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/telegram"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/webhook"
)

func newServeCommand(debug *bool) *cobra.Command {
	var envFile string
	var register bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook bot",
		Long: `Run an HTTP server that receives Telegram webhook updates and sends the
text of every message back to its chat, converted to MarkdownV2.

Configuration is read from the environment, optionally seeded by a .env file:
BOT_TOKEN and WEBHOOK_SECRET are required. When BASE_URL is set the webhook
is registered with Telegram on startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{EnvFile: envFile})
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if *debug {
				level = "debug"
			}
			logger := logging.New(level)
			logging.SetDefault(logger)
			tgmd.SetLogger(logger.WithPrefix("tgmd"))

			return runServe(logging.WithLogger(cmd.Context(), logger), cfg, register)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "path to .env file (default .env when present)")
	cmd.Flags().BoolVar(&register, "register", true, "register the webhook with Telegram when BASE_URL is set")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, register bool) error {
	logger := logging.FromContext(ctx)

	policy, err := telegram.ParseFailurePolicy(cfg.FailurePolicy)
	if err != nil {
		return err
	}
	renderCfg, err := config.RenderConfig(cfg.SymbolsFile)
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("telegram connect: %w", err)
	}
	logger.Info("authorised", "bot", bot.Self.UserName)

	if url := cfg.WebhookURL(webhook.PathWebhook); register && url != "" {
		if err := telegram.RegisterWebhook(bot, url, cfg.WebhookSecret); err != nil {
			return err
		}
		logger.Info("webhook registered", logging.FieldURL, url)
	}

	deliverer := telegram.NewDeliverer(bot,
		telegram.WithRate(cfg.SendRate, cfg.SendBurst),
		telegram.WithLimit(cfg.MaxMessageLength),
		telegram.WithFailurePolicy(policy),
		telegram.WithConvertOptions(tgmd.WithConfig(renderCfg)),
		telegram.WithLogger(logger),
	)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := webhook.NewServer(cfg.WebhookSecret, deliverer,
		webhook.WithLogger(logger),
		webhook.WithContext(context.WithoutCancel(ctx)),
	)

	logger.Info("listening", logging.FieldAddr, cfg.ListenAddr)
	err = webhook.ListenAndServe(ctx, cfg.ListenAddr, srv.Handler())
	srv.Wait()
	return err
}
