package sinks

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/typelog/typelog/core"
	"github.com/typelog/typelog/selflog"
)

// ANSI colors per console channel.
const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// ConsoleSink writes formatted lines to per-channel writers: informational
// and warning output to stdout, errors to stderr by default. Warning lines
// are colored yellow and error lines red when the output is a terminal.
type ConsoleSink struct {
	mu       sync.Mutex
	info     io.Writer
	warn     io.Writer
	err      io.Writer
	useColor bool
}

// NewConsoleSink creates a console sink on stdout/stderr with automatic
// color detection.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		info:     os.Stdout,
		warn:     os.Stdout,
		err:      os.Stderr,
		useColor: shouldUseColor(os.Stdout),
	}
}

// NewConsoleSinkWithWriters creates a console sink with custom channel
// writers. Color is disabled; the writers are typically buffers or pipes.
func NewConsoleSinkWithWriters(info, warn, err io.Writer) *ConsoleSink {
	return &ConsoleSink{info: info, warn: warn, err: err}
}

// Write sends one formatted line to the writer for ch. The subject is part
// of the console contract so host consoles can link lines back to their
// source; this sink does not use it.
func (cs *ConsoleSink) Write(line string, ch core.Channel, subject any) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	w := cs.info
	color := ""
	switch ch {
	case core.ChannelWarning:
		w, color = cs.warn, colorYellow
	case core.ChannelError:
		w, color = cs.err, colorRed
	}
	if cs.useColor && color != "" {
		line = color + line + colorReset
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed: %v", err)
		}
	}
}

// shouldUseColor determines whether ANSI colors should be emitted on w.
// TYPELOG_FORCE_COLOR overrides detection in either direction; NO_COLOR
// disables it.
func shouldUseColor(w io.Writer) bool {
	if force := os.Getenv("TYPELOG_FORCE_COLOR"); force != "" {
		switch strings.ToLower(force) {
		case "none", "0", "false", "off":
			return false
		default:
			return true
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
