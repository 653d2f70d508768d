package server

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger настраивает глобальный slog: JSON-вывод в stdout с
// уровнем из конфигурации. Вызывается один раз при старте процесса.
func InitLogger(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

// parseLogLevel уровень логирования из строки; неизвестный уровень дает INFO
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
