// Package selflog is the diagnostic channel for typelog's own failures.
//
// Logging must never fail the code that logs, so sink write errors, degraded
// configuration entries, and init-hook panics are reported here instead of
// propagating. When disabled (the default) reports are discarded.
//
// Enable output to a writer:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// or with a callback:
//
//	selflog.EnableFunc(func(msg string) {
//	    syslog.Warning("typelog: " + msg)
//	})
//
// Messages are formatted as:
//
//	2025-01-29T15:30:45Z [component] message details
//
// Set TYPELOG_SELFLOG to "stderr", "stdout", or a file path to enable on
// startup.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	outputWriter atomic.Pointer[io.Writer]
	outputFunc   atomic.Pointer[func(string)]
)

// Enable activates self-logging to the provided writer.
// The writer should be thread-safe or wrapped with Sync().
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging using a callback function.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// Printf reports an internal diagnostic message. The format string should
// name the component in square brackets, e.g. "[file] write failed: %v".
func Printf(format string, args ...any) {
	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	line := time.Now().UTC().Format(time.RFC3339) + " " + msg

	if w != nil {
		fmt.Fprintln(*w, line)
	} else if fn != nil {
		(*fn)(line)
	}
}

// IsEnabled returns true if selflog is currently enabled. Check it before
// formatting expensive diagnostics:
//
//	if selflog.IsEnabled() {
//	    selflog.Printf("[scope] dropped %d entries", n)
//	}
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

// syncWriter wraps an io.Writer to make it thread-safe.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps a writer to make it thread-safe. Use it when enabling file
// output or another non-synchronized writer.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	if dest := os.Getenv("TYPELOG_SELFLOG"); dest != "" {
		switch dest {
		case "stderr":
			Enable(os.Stderr)
		case "stdout":
			Enable(os.Stdout)
		default:
			if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				Enable(Sync(f))
			}
		}
	}
}
