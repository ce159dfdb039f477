package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/typelog/typelog/core"
)

// SlogHandler adapts an Emitter to log/slog. Attribute key/value pairs are
// appended to the rendered message; group names prefix attribute keys.
type SlogHandler struct {
	emitter Emitter
	attrs   []slog.Attr
	prefix  string
}

// NewSlogHandler creates a slog handler backed by e.
func NewSlogHandler(e Emitter) *SlogHandler {
	return &SlogHandler{emitter: e}
}

// Enabled reports whether records at the given level would be emitted.
func (h *SlogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.emitter.ShouldLog(severityForSlog(level), nil)
}

// Handle emits the record. It never returns an error; failures downstream
// are reported through selflog by the sinks.
func (h *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	// Stored attrs already carry the group prefix that was active when they
	// were added; only record attrs get the current one.
	for _, attr := range h.attrs {
		writeAttr(&b, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.prefix, attr)
		return true
	})
	h.emitter.Log(severityForSlog(record.Level), nil, b.String())
	return nil
}

// WithAttrs returns a handler that appends the attributes to every record.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, attr := range attrs {
		if h.prefix != "" {
			attr.Key = h.prefix + "." + attr.Key
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

// WithGroup returns a handler that prefixes attribute keys with the group
// name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.prefix != "" {
		clone.prefix += "." + name
	} else {
		clone.prefix = name
	}
	return &clone
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=")
	b.WriteString(fmt.Sprint(attr.Value.Resolve().Any()))
}

func severityForSlog(level slog.Level) core.Severity {
	switch {
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warning
	case level >= slog.LevelInfo:
		return core.Info
	}
	return core.Debug
}
