package core

// Console receives fully formatted lines routed by channel. The subject that
// produced the line rides along so host consoles can link output back to its
// source; implementations are free to ignore it.
type Console interface {
	Write(line string, ch Channel, subject any)
}

// Appender appends raw text to a destination, one message per line.
// Implementations report failures through selflog and never return them,
// because logging must be a no-fail operation for the caller.
type Appender interface {
	Append(text string)
}
