package tgmd

import (
	"github.com/charmbracelet/log"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
)

// Logger 全局日志记录器，引擎只在 debug 级别输出
var Logger = logging.Default().WithPrefix("tgmd")

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
