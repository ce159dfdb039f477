// Package handler adapts a typelog logger to external logging interfaces
// (logr.LogSink and log/slog).
package handler

import "github.com/typelog/typelog/core"

// Emitter is the subset of the logger the adapters need.
type Emitter interface {
	Log(severity core.Severity, subject any, message string)
	ShouldLog(severity core.Severity, subject any) bool
}
