package sinks

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/typelog/typelog/selflog"
)

// FileSink appends raw messages to a file, creating the parent directory on
// first use. Append failures are reported through selflog and never
// returned; an open failure is retried on the next append.
type FileSink struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewFileSink creates a file sink for path. The file is opened lazily on
// the first append, so construction cannot fail.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the sink's target path.
func (fs *FileSink) Path() string {
	return fs.path
}

// Append writes one newline-terminated message.
func (fs *FileSink) Append(text string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.file == nil {
		if err := fs.open(); err != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[file] open failed: %v", err)
			}
			return
		}
	}
	if _, err := fs.file.WriteString(text + "\n"); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] write failed: %v", err)
		}
	}
}

// Close flushes and closes the file if it was ever opened.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.file == nil {
		return nil
	}
	file := fs.file
	fs.file = nil

	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

func (fs *FileSink) open() error {
	if dir := filepath.Dir(fs.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	fs.file = file
	return nil
}
