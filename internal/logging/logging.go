package logging

import "log"

// Provides a simple logger interface for the application

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// StdLogger writes leveled messages through the standard log package.
// Debug output is dropped unless Verbose is set.
type StdLogger struct {
	Verbose bool
}

func (l StdLogger) Debug(msg string, args ...any) {
	if l.Verbose {
		log.Printf("DEBUG: "+msg, args...)
	}
}

func (l StdLogger) Info(msg string, args ...any)  { log.Printf("INFO: "+msg, args...) }
func (l StdLogger) Warn(msg string, args ...any)  { log.Printf("WARN: "+msg, args...) }
func (l StdLogger) Error(msg string, args ...any) { log.Printf("ERROR: "+msg, args...) }
