package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	tgmd "github.com/nicksan4ez/Markdown-tg-bot"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/config"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/webhook"
)

// formatFlags holds the flags for the format command.
type formatFlags struct {
	limit        int
	entitiesPath string
	symbolsPath  string
	utf16        bool
	noEntities   bool
	jsonOutput   bool
	separator    string
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Convert Markdown to MarkdownV2 chunks",
		Long: `Convert Markdown read from a file (or stdin when no file or "-" is given)
to Telegram MarkdownV2 and print the resulting message chunks.

Entities in Telegram's JSON format can be supplied with --entities; they are
turned back into Markdown markers before conversion.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.limit, "limit", "l", tgmd.DefaultLimit, "maximum chunk length")
	cmd.Flags().StringVarP(&flags.entitiesPath, "entities", "e", "", "JSON file with Telegram message entities")
	cmd.Flags().StringVarP(&flags.symbolsPath, "symbols", "s", "", "YAML file overriding render glyphs")
	cmd.Flags().BoolVar(&flags.utf16, "utf16", false, "measure --limit in UTF-16 code units")
	cmd.Flags().BoolVar(&flags.noEntities, "no-reconstruct", false, "ignore entities")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "print chunks as a JSON array")
	cmd.Flags().StringVar(&flags.separator, "separator", "\n", "text printed between chunks")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	logger := logging.FromContext(cmd.Context())

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var entities []tgmd.Entity
	if flags.entitiesPath != "" {
		raw, err := os.ReadFile(flags.entitiesPath)
		if err != nil {
			return fmt.Errorf("read entities: %w", err)
		}
		entities = webhook.ParseEntities(raw)
		logger.Debug("loaded entities", logging.FieldPath, flags.entitiesPath, logging.FieldEntities, len(entities))
	}

	renderCfg, err := config.RenderConfig(flags.symbolsPath)
	if err != nil {
		return err
	}

	chunks := tgmd.Telegramify(text, entities, flags.limit,
		tgmd.WithConfig(renderCfg),
		tgmd.WithReconstruction(!flags.noEntities),
		tgmd.WithUTF16Limit(flags.utf16),
	)

	out := cmd.OutOrStdout()
	if flags.jsonOutput {
		if chunks == nil {
			chunks = []string{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(chunks)
	}

	for i, chunk := range chunks {
		if i > 0 {
			if _, err := io.WriteString(out, flags.separator); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, chunk); err != nil {
			return err
		}
	}
	return nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
