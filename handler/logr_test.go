package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/typelog/typelog/core"
)

type recordedCall struct {
	severity core.Severity
	subject  any
	message  string
}

// recordingEmitter captures Log calls and answers ShouldLog from a floor.
type recordingEmitter struct {
	floor core.Severity
	calls []recordedCall
}

func (r *recordingEmitter) Log(severity core.Severity, subject any, message string) {
	r.calls = append(r.calls, recordedCall{severity, subject, message})
}

func (r *recordingEmitter) ShouldLog(severity core.Severity, subject any) bool {
	return severity.Meets(r.floor)
}

func TestLogrSinkSeverityMapping(t *testing.T) {
	emitter := &recordingEmitter{floor: core.All}
	logger := logr.New(NewLogrSink(emitter))

	logger.Info("ready")
	logger.V(1).Info("details")
	logger.Error(errors.New("boom"), "failed")

	if len(emitter.calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(emitter.calls))
	}
	if emitter.calls[0].severity != core.Info {
		t.Errorf("V(0) severity = %v, want Info", emitter.calls[0].severity)
	}
	if emitter.calls[1].severity != core.Debug {
		t.Errorf("V(1) severity = %v, want Debug", emitter.calls[1].severity)
	}
	if emitter.calls[2].severity != core.Error {
		t.Errorf("Error severity = %v, want Error", emitter.calls[2].severity)
	}
	if !strings.Contains(emitter.calls[2].message, "error=boom") {
		t.Errorf("error not appended: %q", emitter.calls[2].message)
	}
}

func TestLogrSinkKeyValues(t *testing.T) {
	emitter := &recordingEmitter{floor: core.All}
	logger := logr.New(NewLogrSink(emitter)).WithValues("region", "eu-1")

	logger.Info("started", "port", 8080)

	if len(emitter.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(emitter.calls))
	}
	msg := emitter.calls[0].message
	if !strings.Contains(msg, "region=eu-1") || !strings.Contains(msg, "port=8080") {
		t.Errorf("key/values missing from %q", msg)
	}
}

func TestLogrSinkName(t *testing.T) {
	emitter := &recordingEmitter{floor: core.All}
	logger := logr.New(NewLogrSink(emitter)).WithName("ingest").WithName("batch")

	logger.Info("tick")

	if len(emitter.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(emitter.calls))
	}
	if emitter.calls[0].subject != "ingest/batch" {
		t.Errorf("subject = %v, want %q", emitter.calls[0].subject, "ingest/batch")
	}
}

func TestLogrSinkEnabled(t *testing.T) {
	emitter := &recordingEmitter{floor: core.Info}
	logger := logr.New(NewLogrSink(emitter))

	logger.V(1).Info("filtered debug")

	if len(emitter.calls) != 0 {
		t.Errorf("expected debug to be filtered by the Info floor, got %v", emitter.calls)
	}
}
