package core

import (
	"errors"
	"fmt"
	"strings"
)

// Severity identifies the importance of a log event as a bit-field.
type Severity int32

const (
	// Debug is the most detailed severity.
	Debug Severity = 1 << iota

	// Info is for informational messages.
	Info

	// Warning is for warnings.
	Warning

	// Error is for errors.
	Error
)

const (
	// None carries no bits. As a floor it rejects every severity.
	None Severity = 0

	// All carries every bit. As a floor it accepts every severity.
	All Severity = ^Severity(0)
)

// ErrInvalidSeverityName is returned when a severity name cannot be parsed.
var ErrInvalidSeverityName = errors.New("invalid severity name")

// ParseSeverity converts a severity name to its value. Names are matched
// case-insensitively and include the sentinels NONE and ALL.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "dbg":
		return Debug, nil
	case "info", "information", "inf":
		return Info, nil
	case "warning", "warn", "wrn":
		return Warning, nil
	case "error", "err":
		return Error, nil
	case "none":
		return None, nil
	case "all":
		return All, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidSeverityName, name)
}

// Meets reports whether a message carrying severity s passes the given
// minimum. None as a floor rejects everything and All accepts everything;
// between the sentinels the comparison is ordered, not bitwise.
func (s Severity) Meets(floor Severity) bool {
	switch floor {
	case None:
		return false
	case All:
		return true
	}
	return s >= floor
}

// Channel identifies a console output channel.
type Channel int

const (
	// ChannelInfo is the informational console channel.
	ChannelInfo Channel = iota

	// ChannelWarning is the warning console channel.
	ChannelWarning

	// ChannelError is the error console channel.
	ChannelError
)

// Channel selects the console channel for s. The bits are tested
// independently of the ordered floor comparison; when both the Error and
// Warning bits are set, Error wins.
func (s Severity) Channel() Channel {
	if s&Error != 0 {
		return ChannelError
	}
	if s&Warning != 0 {
		return ChannelWarning
	}
	return ChannelInfo
}

// String returns the display label for s. Combined bits are joined with "|".
func (s Severity) String() string {
	switch s {
	case None:
		return "NONE"
	case All:
		return "ALL"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	}
	var parts []string
	for _, known := range []struct {
		bit  Severity
		name string
	}{{Debug, "DEBUG"}, {Info, "INFO"}, {Warning, "WARNING"}, {Error, "ERROR"}} {
		if s&known.bit != 0 {
			parts = append(parts, known.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Severity(%d)", int32(s))
	}
	return strings.Join(parts, "|")
}
