// Package typelog is a severity- and type-scoped log filtering and
// formatting engine. A Logger decides whether a candidate event (subject,
// severity, message) should be emitted, renders it into a canonical line,
// and fans it out to a console and a file sink.
//
// Filtering runs in two modes. By default every subject type is logged
// against one global severity floor. Per-type scoping turns the scope
// registry into an allow-list instead: only subject types with a recorded
// floor are logged, each against its own floor.
package typelog

import (
	"reflect"
	"sync"
	"time"

	"github.com/typelog/typelog/core"
	"github.com/typelog/typelog/internal/filters"
	"github.com/typelog/typelog/selflog"
)

// Logger owns all filtering, formatting, and sink configuration. One mutex
// guards every configuration read and write so a concurrent configuration
// change cannot tear a decision; sink I/O happens after the lock is
// released. Logging methods never return errors and never panic on the
// caller.
type Logger struct {
	mu sync.Mutex

	console        core.Console
	file           core.Appender
	consoleEnabled bool
	fileEnabled    bool

	formatter Formatter
	scope     *filters.TypeScopeFilter

	suppressDepth int

	initialized bool
	initHook    func()

	clock func() time.Time
}

// New creates a logger from the supplied options. With no options the
// logger accepts every severity and subject type but has no sinks, so
// nothing is emitted. Option errors (a bad severity name, an unknown
// subject type in a scope list) are reported through selflog; use the
// corresponding Logger methods or the configuration package when errors
// must surface.
func New(opts ...Option) *Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	l := &Logger{
		console:        cfg.console,
		file:           cfg.file,
		consoleEnabled: cfg.console != nil,
		fileEnabled:    cfg.file != nil,
		formatter:      cfg.formatter,
		scope:          filters.NewTypeScopeFilter(),
		initHook:       cfg.initHook,
		clock:          cfg.clock,
	}
	l.scope.SetDefaultFloor(cfg.floor)
	for _, name := range cfg.subjects {
		l.scope.RegisterName(name)
	}
	if len(cfg.scopes) > 0 {
		if err := l.scope.Configure(cfg.scopes); err != nil && cfg.err == nil {
			cfg.err = err
		}
	}
	if cfg.err != nil && selflog.IsEnabled() {
		selflog.Printf("[config] %v", cfg.err)
	}
	return l
}

// Log emits one event. The call is fire-and-forget: suppression, filtering,
// and sink failures all end silently from the caller's point of view.
func (l *Logger) Log(severity core.Severity, subject any, message string) {
	l.runInitHook()

	l.mu.Lock()
	if l.suppressDepth > 0 {
		l.mu.Unlock()
		return
	}
	if !l.shouldLogLocked(severity, subject) {
		l.mu.Unlock()
		return
	}
	// Formatting happens only for events that passed, under the lock so the
	// display configuration is read as one snapshot.
	event := &core.LogEvent{
		Timestamp: l.clock(),
		Severity:  severity,
		Subject:   subject,
		Message:   message,
	}
	line := l.formatter.Format(event)
	console, file := l.console, l.file
	consoleOn := l.consoleEnabled && console != nil
	fileOn := l.fileEnabled && file != nil
	l.mu.Unlock()

	// The file sink receives the raw message, not the formatted line.
	if fileOn {
		file.Append(message)
	}
	if consoleOn {
		console.Write(line, severity.Channel(), subject)
	}
}

// Debug emits a debug-severity event.
func (l *Logger) Debug(subject any, message string) {
	l.Log(core.Debug, subject, message)
}

// Info emits an info-severity event.
func (l *Logger) Info(subject any, message string) {
	l.Log(core.Info, subject, message)
}

// Warning emits a warning-severity event.
func (l *Logger) Warning(subject any, message string) {
	l.Log(core.Warning, subject, message)
}

// Error emits an error-severity event.
func (l *Logger) Error(subject any, message string) {
	l.Log(core.Error, subject, message)
}

// ShouldLog reports whether an event with the given severity and subject
// would pass filtering right now, including the fast exit when no sink is
// enabled. Suppression is checked separately by Log.
func (l *Logger) ShouldLog(severity core.Severity, subject any) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shouldLogLocked(severity, subject)
}

func (l *Logger) shouldLogLocked(severity core.Severity, subject any) bool {
	if (!l.consoleEnabled || l.console == nil) && (!l.fileEnabled || l.file == nil) {
		return false
	}
	return l.scope.IsEnabled(severity, subject)
}

// runInitHook flips the initialized flag exactly once and runs the hook
// outside the lock. A panicking hook is reported through selflog and never
// retried.
func (l *Logger) runInitHook() {
	l.mu.Lock()
	if l.initialized {
		l.mu.Unlock()
		return
	}
	l.initialized = true
	hook := l.initHook
	l.mu.Unlock()

	if hook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[init] hook panicked: %v", r)
			}
		}
	}()
	hook()
}

// PushSuppression disables all logging until a matching PopSuppression.
// Calls nest.
func (l *Logger) PushSuppression() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.suppressDepth++
}

// PopSuppression re-enables logging once the outermost push is popped.
// Unmatched pops are ignored, so one later push always suppresses again.
func (l *Logger) PopSuppression() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.suppressDepth > 0 {
		l.suppressDepth--
	}
}

// Suppressed reports whether logging is currently suppressed.
func (l *Logger) Suppressed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.suppressDepth > 0
}

// SetMinimumSeverity sets the global severity floor used while per-type
// scoping is off.
func (l *Logger) SetMinimumSeverity(floor core.Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scope.SetDefaultFloor(floor)
}

// SetMinimumSeverityNamed parses name and sets the global severity floor.
// Unlike the best-effort scope configuration, a bad name fails with
// core.ErrInvalidSeverityName and leaves the floor unchanged.
func (l *Logger) SetMinimumSeverityNamed(name string) error {
	floor, err := core.ParseSeverity(name)
	if err != nil {
		return err
	}
	l.SetMinimumSeverity(floor)
	return nil
}

// MinimumSeverity returns the global severity floor.
func (l *Logger) MinimumSeverity() core.Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scope.DefaultFloor()
}

// SetAllSubjects turns per-type scoping off; every subject type is logged
// against the global floor again.
func (l *Logger) SetAllSubjects() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scope.SetAll()
}

// LogsAllSubjects reports whether per-type scoping is off.
func (l *Logger) LogsAllSubjects() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scope.LogsAll()
}

// SetScope turns per-type scoping on and records the minimum severity for
// one subject type. The floor token "ALL" means always pass, "NONE" means
// never; an unparsable token degrades to always-pass with a selflog
// warning.
func (l *Logger) SetScope(name, floorToken string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scope.SetScope(name, floorToken)
}

// ConfigureScopes applies an ordered list of scope tokens, each either the
// all-types marker "ALL" or "Name[:SEVERITY]". A severity that fails to
// parse degrades that entry to always-pass; a subject type name that was
// never registered fails with core.ErrUnknownSubjectType and aborts the
// rest of the list. The all-types marker wins over specific entries in the
// same call regardless of order.
func (l *Logger) ConfigureScopes(entries []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scope.Configure(entries)
}

// RegisterSubjectName marks a subject type name as resolvable for
// ConfigureScopes.
func (l *Logger) RegisterSubjectName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scope.RegisterName(name)
}

// RegisterSubject registers T's type name as a resolvable subject type and
// returns the registered name.
func RegisterSubject[T any](l *Logger) string {
	name := core.SubjectName(reflect.TypeOf((*T)(nil)).Elem())
	l.RegisterSubjectName(name)
	return name
}

// EnableConsole enables or disables the console sink at runtime.
func (l *Logger) EnableConsole(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.consoleEnabled = on
}

// EnableFile enables or disables the file sink at runtime.
func (l *Logger) EnableFile(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileEnabled = on
}

// SetConsoleSink replaces the console sink and enables it.
func (l *Logger) SetConsoleSink(console core.Console) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = console
	l.consoleEnabled = console != nil
}

// SetFileSink replaces the file sink and enables it.
func (l *Logger) SetFileSink(file core.Appender) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.file = file
	l.fileEnabled = file != nil
}

// SetDisplay replaces the four display toggles in one call.
func (l *Logger) SetDisplay(timestamp, severity, subject, subjectValue bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter.ShowTimestamp = timestamp
	l.formatter.ShowSeverity = severity
	l.formatter.ShowSubject = subject
	l.formatter.ShowSubjectValue = subjectValue
}

// SetTimestampLayout sets the timestamp layout used by the formatter.
func (l *Logger) SetTimestampLayout(layout string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter.TimestampLayout = layout
}
