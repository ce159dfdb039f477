package core

import "time"

// LogEvent represents a single candidate log event.
type LogEvent struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Severity is the importance of the event.
	Severity Severity

	// Subject is the object, type, or name the event is attributed to.
	Subject any

	// Message is the raw message text.
	Message string
}
