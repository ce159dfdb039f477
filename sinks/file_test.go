package sinks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/typelog/typelog/selflog"
)

func TestFileSinkAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	sink := NewFileSink(path)
	defer sink.Close()

	sink.Append("first")
	sink.Append("second")

	if err := sink.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if got := string(data); got != "first\nsecond\n" {
		t.Errorf("file contents = %q", got)
	}
}

func TestFileSinkCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "app.log")
	sink := NewFileSink(path)
	defer sink.Close()

	sink.Append("hello")

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file was not created: %v", err)
	}
}

func TestFileSinkOpenFailureReportsToSelflog(t *testing.T) {
	var reports []string
	selflog.EnableFunc(func(msg string) { reports = append(reports, msg) })
	defer selflog.Disable()

	// The target path is a directory, so opening must fail.
	dir := t.TempDir()
	sink := NewFileSink(dir)

	sink.Append("doomed")

	if len(reports) != 1 || !strings.Contains(reports[0], "[file]") {
		t.Errorf("expected one [file] report, got %v", reports)
	}
}

func TestFileSinkCloseWithoutOpen(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "never.log"))
	if err := sink.Close(); err != nil {
		t.Errorf("Close on an unopened sink returned %v", err)
	}
}
