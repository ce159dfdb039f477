package typelog

import (
	"log/slog"

	"github.com/typelog/typelog/handler"
)

// NewSlogLogger creates a new slog.Logger backed by typelog.
func NewSlogLogger(options ...Option) *slog.Logger {
	return slog.New(handler.NewSlogHandler(New(options...)))
}

// AsSlogHandler returns the logger as a slog.Handler.
func (l *Logger) AsSlogHandler() slog.Handler {
	return handler.NewSlogHandler(l)
}
