package handler

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/typelog/typelog/core"
)

func TestSlogHandlerLevelMapping(t *testing.T) {
	emitter := &recordingEmitter{floor: core.All}
	logger := slog.New(NewSlogHandler(emitter))

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	want := []core.Severity{core.Debug, core.Info, core.Warning, core.Error}
	if len(emitter.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(emitter.calls))
	}
	for i, severity := range want {
		if emitter.calls[i].severity != severity {
			t.Errorf("call %d severity = %v, want %v", i, emitter.calls[i].severity, severity)
		}
	}
}

func TestSlogHandlerAttrsAndGroups(t *testing.T) {
	emitter := &recordingEmitter{floor: core.All}
	logger := slog.New(NewSlogHandler(emitter)).With("region", "eu-1").WithGroup("req")

	logger.Info("handled", "status", 200)

	if len(emitter.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(emitter.calls))
	}
	msg := emitter.calls[0].message
	if !strings.Contains(msg, "region=eu-1") {
		t.Errorf("base attr missing from %q", msg)
	}
	if !strings.Contains(msg, "req.status=200") {
		t.Errorf("grouped attr missing from %q", msg)
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	emitter := &recordingEmitter{floor: core.Warning}
	logger := slog.New(NewSlogHandler(emitter))

	logger.Info("filtered")
	logger.Warn("kept")

	if len(emitter.calls) != 1 || emitter.calls[0].severity != core.Warning {
		t.Errorf("expected only the warning to pass, got %v", emitter.calls)
	}
}
