package logging

import (
	"io"
	"log"
)

// Level orders message severities
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

var levelPrefix = [...]string{
	LevelDebug:   "[DEBUG] ",
	LevelInfo:    "[INFO] ",
	LevelWarning: "[WARN] ",
	LevelError:   "[ERROR] ",
}

// Logger is the diagnostics sink used by the simulation
// Logging never affects control flow
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// StdLogger writes level-prefixed lines through a standard library logger
type StdLogger struct {
	out *log.Logger
	min Level
}

// NewStdLogger wraps out; messages below min are dropped
func NewStdLogger(out *log.Logger, min Level) *StdLogger {
	return &StdLogger{out: out, min: min}
}

// Default returns a logger writing through the global log package output
func Default(min Level) *StdLogger {
	return NewStdLogger(log.Default(), min)
}

// Discard returns a logger that drops everything
func Discard() *StdLogger {
	return NewStdLogger(log.New(io.Discard, "", 0), LevelError+1)
}

func (l *StdLogger) write(level Level, msg string) {
	if level < l.min {
		return
	}
	l.out.Print(levelPrefix[level] + msg)
}

func (l *StdLogger) Debug(msg string)   { l.write(LevelDebug, msg) }
func (l *StdLogger) Info(msg string)    { l.write(LevelInfo, msg) }
func (l *StdLogger) Warning(msg string) { l.write(LevelWarning, msg) }
func (l *StdLogger) Error(msg string)   { l.write(LevelError, msg) }
