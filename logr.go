package typelog

import (
	"github.com/go-logr/logr"

	"github.com/typelog/typelog/handler"
)

// NewLogrLogger creates a new logr.Logger backed by typelog.
func NewLogrLogger(options ...Option) logr.Logger {
	return logr.New(handler.NewLogrSink(New(options...)))
}

// AsLogrSink returns the logger as a logr.LogSink.
func (l *Logger) AsLogrSink() logr.LogSink {
	return handler.NewLogrSink(l)
}
