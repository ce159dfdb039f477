package typelog

import (
	"strings"

	"github.com/typelog/typelog/core"
)

// DefaultTimestampLayout is the timestamp layout used when none is
// configured.
const DefaultTimestampLayout = "2006-01-02 15:04:05.000"

// Formatter renders a log event into one line. Each optional field is
// independently toggleable and rendered in square brackets. Disabled fields
// contribute nothing: parts are joined with single spaces and the line
// carries no leading or trailing separators, so with every toggle off the
// result is exactly the raw message.
type Formatter struct {
	// ShowTimestamp renders the event timestamp as "[2006-01-02 ...]".
	ShowTimestamp bool

	// ShowSeverity renders the severity label as "[WARNING]".
	ShowSeverity bool

	// ShowSubject renders the resolved subject name as "[Name]".
	ShowSubject bool

	// ShowSubjectValue renders the subject's default string conversion
	// after the message.
	ShowSubjectValue bool

	// TimestampLayout is a Go reference-time layout. Empty means
	// DefaultTimestampLayout.
	TimestampLayout string
}

// Format renders e. Field order is fixed: timestamp, severity, subject
// name, message, then the subject's string form.
func (f *Formatter) Format(e *core.LogEvent) string {
	parts := make([]string, 0, 5)
	if f.ShowTimestamp {
		layout := f.TimestampLayout
		if layout == "" {
			layout = DefaultTimestampLayout
		}
		parts = append(parts, "["+e.Timestamp.Format(layout)+"]")
	}
	if f.ShowSeverity {
		parts = append(parts, "["+e.Severity.String()+"]")
	}
	if f.ShowSubject {
		if name := core.SubjectName(e.Subject); name != "" {
			parts = append(parts, "["+name+"]")
		}
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if f.ShowSubjectValue && e.Subject != nil {
		parts = append(parts, "["+core.SubjectValue(e.Subject)+"]")
	}
	return strings.Join(parts, " ")
}
