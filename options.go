package typelog

import (
	"time"

	"github.com/typelog/typelog/core"
	"github.com/typelog/typelog/sinks"
)

// config holds the configuration for building a logger.
type config struct {
	console   core.Console
	file      core.Appender
	formatter Formatter
	floor     core.Severity
	initHook  func()
	clock     func() time.Time
	subjects  []string
	scopes    []string
	err       error // First error encountered during configuration
}

func defaultConfig() *config {
	return &config{
		formatter: Formatter{
			ShowTimestamp: true,
			ShowSeverity:  true,
			ShowSubject:   true,
		},
		floor: core.All,
		clock: time.Now,
	}
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithConsole adds the default console sink (stdout/stderr with color
// detection).
func WithConsole() Option {
	return WithConsoleSink(sinks.NewConsoleSink())
}

// WithConsoleSink adds a custom console sink.
func WithConsoleSink(console core.Console) Option {
	return func(c *config) {
		c.console = console
	}
}

// WithFile adds a file sink appending to path.
func WithFile(path string) Option {
	return WithFileSink(sinks.NewFileSink(path))
}

// WithFileSink adds a custom file sink.
func WithFileSink(file core.Appender) Option {
	return func(c *config) {
		c.file = file
	}
}

// WithMinimumSeverity sets the global severity floor.
func WithMinimumSeverity(floor core.Severity) Option {
	return func(c *config) {
		c.floor = floor
	}
}

// WithMinimumSeverityNamed parses name and sets the global severity floor.
// A bad name is captured as the configuration error and the floor is left
// unchanged.
func WithMinimumSeverityNamed(name string) Option {
	return func(c *config) {
		if c.err != nil {
			return // Don't process if already errored
		}
		floor, err := core.ParseSeverity(name)
		if err != nil {
			c.err = err
			return
		}
		c.floor = floor
	}
}

// WithShowTimestamp toggles the timestamp display field.
func WithShowTimestamp(on bool) Option {
	return func(c *config) {
		c.formatter.ShowTimestamp = on
	}
}

// WithShowSeverity toggles the severity-label display field.
func WithShowSeverity(on bool) Option {
	return func(c *config) {
		c.formatter.ShowSeverity = on
	}
}

// WithShowSubject toggles the subject-name display field.
func WithShowSubject(on bool) Option {
	return func(c *config) {
		c.formatter.ShowSubject = on
	}
}

// WithShowSubjectValue toggles the serialized-subject display field.
func WithShowSubjectValue(on bool) Option {
	return func(c *config) {
		c.formatter.ShowSubjectValue = on
	}
}

// WithTimestampLayout sets the timestamp layout (Go reference-time format).
func WithTimestampLayout(layout string) Option {
	return func(c *config) {
		c.formatter.TimestampLayout = layout
	}
}

// WithInitHook sets the one-time initialization hook, run lazily before the
// first logging call.
func WithInitHook(hook func()) Option {
	return func(c *config) {
		c.initHook = hook
	}
}

// WithClock overrides the timestamp source. Meant for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithSubjects registers subject type names as resolvable for scope
// configuration.
func WithSubjects(names ...string) Option {
	return func(c *config) {
		c.subjects = append(c.subjects, names...)
	}
}

// WithScopes applies scope tokens after the logger is built, in
// ConfigureScopes syntax. Subject names must be registered first, e.g. via
// WithSubjects earlier in the option list.
func WithScopes(entries ...string) Option {
	return func(c *config) {
		c.scopes = append(c.scopes, entries...)
	}
}
