package selflog_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/typelog/typelog/selflog"
)

func TestSelfLog(t *testing.T) {
	selflog.Disable()
	defer selflog.Disable()

	t.Run("disabled by default", func(t *testing.T) {
		if selflog.IsEnabled() {
			t.Error("expected selflog to start disabled")
		}
		selflog.Printf("[test] should be discarded")
	})

	t.Run("enable with writer", func(t *testing.T) {
		var buf bytes.Buffer
		selflog.Enable(&buf)
		defer selflog.Disable()

		selflog.Printf("[test] error: %s", "boom")

		output := buf.String()
		if !strings.Contains(output, "[test] error: boom") {
			t.Errorf("expected message, got: %s", output)
		}
		if !strings.Contains(output, time.Now().UTC().Format("2006-01-02")) {
			t.Error("expected timestamp in output")
		}
	})

	t.Run("enable with func", func(t *testing.T) {
		var messages []string
		selflog.EnableFunc(func(msg string) {
			messages = append(messages, msg)
		})
		defer selflog.Disable()

		selflog.Printf("[file] write failed: %v", "disk full")

		if len(messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(messages))
		}
		if !strings.Contains(messages[0], "[file] write failed: disk full") {
			t.Errorf("unexpected message: %s", messages[0])
		}
	})

	t.Run("disable stops output", func(t *testing.T) {
		var buf bytes.Buffer
		selflog.Enable(&buf)
		selflog.Disable()

		selflog.Printf("[test] should not appear")
		if buf.Len() > 0 {
			t.Errorf("expected no output after disable, got %q", buf.String())
		}
	})

	t.Run("nil writer is ignored", func(t *testing.T) {
		selflog.Enable(nil)
		if selflog.IsEnabled() {
			t.Error("Enable(nil) should leave selflog disabled")
		}
	})
}

func TestSyncWriter(t *testing.T) {
	var buf bytes.Buffer
	w := selflog.Sync(&buf)

	if _, err := w.Write([]byte("safe")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.String() != "safe" {
		t.Errorf("got %q", buf.String())
	}
}
