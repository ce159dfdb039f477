package handler

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/typelog/typelog/core"
)

// LogrSink adapts an Emitter to logr.LogSink. Verbosity 0 maps to Info and
// any higher verbosity to Debug; Error calls always map to Error severity.
// The sink's accumulated name becomes the event subject.
type LogrSink struct {
	emitter Emitter
	name    string
	values  []any
}

// NewLogrSink creates a logr sink backed by e.
func NewLogrSink(e Emitter) *LogrSink {
	return &LogrSink{emitter: e}
}

// Init receives runtime information from logr. Nothing is needed here.
func (s *LogrSink) Init(info logr.RuntimeInfo) {}

// Enabled reports whether the given verbosity would be emitted.
func (s *LogrSink) Enabled(level int) bool {
	return s.emitter.ShouldLog(severityFor(level), s.subject())
}

// Info emits a message at the severity for the given verbosity.
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	s.emitter.Log(severityFor(level), s.subject(), s.render(msg, keysAndValues))
}

// Error emits an error-severity message, appending the error as a
// key/value pair.
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err)
	}
	s.emitter.Log(core.Error, s.subject(), s.render(msg, keysAndValues))
}

// WithValues returns a sink that appends the key/value pairs to every
// message.
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	clone := *s
	clone.values = append(append([]any{}, s.values...), keysAndValues...)
	return &clone
}

// WithName returns a sink whose subject carries the additional name
// segment.
func (s *LogrSink) WithName(name string) logr.LogSink {
	clone := *s
	if clone.name != "" {
		clone.name += "/" + name
	} else {
		clone.name = name
	}
	return &clone
}

func (s *LogrSink) subject() any {
	if s.name == "" {
		return nil
	}
	return s.name
}

func (s *LogrSink) render(msg string, keysAndValues []any) string {
	pairs := append(append([]any{}, s.values...), keysAndValues...)
	if len(pairs) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(pairs); i += 2 {
		key := fmt.Sprint(pairs[i])
		value := "(missing)"
		if i+1 < len(pairs) {
			value = fmt.Sprint(pairs[i+1])
		}
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(value)
	}
	return b.String()
}

func severityFor(level int) core.Severity {
	if level > 0 {
		return core.Debug
	}
	return core.Info
}
