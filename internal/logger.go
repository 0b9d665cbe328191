package internal

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// LogLevel represents the logging level.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Logger is injected into every pipeline component so callers (and tests)
// control where warnings about skipped databases and records end up.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// StdLogger writes leveled messages to stderr.
type StdLogger struct {
	level  LogLevel
	logger *log.Logger
}

// NewStdLogger creates a stderr logger at the given level.
func NewStdLogger(level LogLevel) *StdLogger {
	return &StdLogger{
		level:  level,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *StdLogger) Errorf(format string, args ...interface{}) {
	if l.level >= LogLevelError {
		l.logger.Printf("[ERROR] "+format, args...)
	}
}

func (l *StdLogger) Warnf(format string, args ...interface{}) {
	if l.level >= LogLevelWarn {
		l.logger.Printf("[WARN] "+format, args...)
	}
}

func (l *StdLogger) Infof(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		l.logger.Printf("[INFO] "+format, args...)
	}
}

func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		l.logger.Printf("[DEBUG] "+format, args...)
	}
}

// NopLogger discards all output.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (*NopLogger) Errorf(string, ...interface{}) {}
func (*NopLogger) Warnf(string, ...interface{})  {}
func (*NopLogger) Infof(string, ...interface{})  {}
func (*NopLogger) Debugf(string, ...interface{}) {}

// LogEntry is one captured message.
type LogEntry struct {
	Level   LogLevel
	Message string
}

// CollectorLogger captures messages in memory so tests can assert on
// warnings without scraping process output.
type CollectorLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

func NewCollectorLogger() *CollectorLogger { return &CollectorLogger{} }

func (l *CollectorLogger) record(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *CollectorLogger) Errorf(format string, args ...interface{}) {
	l.record(LogLevelError, format, args...)
}

func (l *CollectorLogger) Warnf(format string, args ...interface{}) {
	l.record(LogLevelWarn, format, args...)
}

func (l *CollectorLogger) Infof(format string, args ...interface{}) {
	l.record(LogLevelInfo, format, args...)
}

func (l *CollectorLogger) Debugf(format string, args ...interface{}) {
	l.record(LogLevelDebug, format, args...)
}

// Entries returns a copy of the captured messages.
func (l *CollectorLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// EntriesAt returns captured messages at the given level.
func (l *CollectorLogger) EntriesAt(level LogLevel) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
