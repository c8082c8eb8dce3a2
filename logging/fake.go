package logging

import "sync"

// Entry is a recorded message
type Entry struct {
	Level   Level
	Message string
}

// Fake records every message for test assertions
type Fake struct {
	mu      sync.Mutex
	entries []Entry
}

func (f *Fake) record(level Level, msg string) {
	f.mu.Lock()
	f.entries = append(f.entries, Entry{Level: level, Message: msg})
	f.mu.Unlock()
}

func (f *Fake) Debug(msg string)   { f.record(LevelDebug, msg) }
func (f *Fake) Info(msg string)    { f.record(LevelInfo, msg) }
func (f *Fake) Warning(msg string) { f.record(LevelWarning, msg) }
func (f *Fake) Error(msg string)   { f.record(LevelError, msg) }

// Entries returns a copy of recorded messages
func (f *Fake) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Count returns number of messages at level
func (f *Fake) Count(level Level) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}
