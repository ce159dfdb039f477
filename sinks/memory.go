package sinks

import (
	"sync"

	"github.com/typelog/typelog/core"
)

// ConsoleLine is one line captured by a MemoryConsole.
type ConsoleLine struct {
	Line    string
	Channel core.Channel
	Subject any
}

// MemoryConsole captures console writes in memory for testing.
type MemoryConsole struct {
	mu    sync.Mutex
	lines []ConsoleLine
}

// NewMemoryConsole creates a new in-memory console.
func NewMemoryConsole() *MemoryConsole {
	return &MemoryConsole{}
}

// Write records the line.
func (m *MemoryConsole) Write(line string, ch core.Channel, subject any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, ConsoleLine{Line: line, Channel: ch, Subject: subject})
}

// Lines returns a copy of all captured lines.
func (m *MemoryConsole) Lines() []ConsoleLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]ConsoleLine, len(m.lines))
	copy(lines, m.lines)
	return lines
}

// Count returns the number of captured lines.
func (m *MemoryConsole) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// Clear removes all captured lines.
func (m *MemoryConsole) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = m.lines[:0]
}

// MemoryAppender captures appended messages in memory for testing.
type MemoryAppender struct {
	mu       sync.Mutex
	messages []string
}

// NewMemoryAppender creates a new in-memory appender.
func NewMemoryAppender() *MemoryAppender {
	return &MemoryAppender{}
}

// Append records the message.
func (m *MemoryAppender) Append(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, text)
}

// Messages returns a copy of all captured messages.
func (m *MemoryAppender) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	messages := make([]string, len(m.messages))
	copy(messages, m.messages)
	return messages
}

// Count returns the number of captured messages.
func (m *MemoryAppender) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}
