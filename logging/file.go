package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogFileName is the active log file inside the log directory
	LogFileName = "ant-colony.log"

	// MaxLogSize triggers rotation of the existing file on setup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// Setup routes the standard logger to dir/LogFileName when debug is set
// Without debug all output is discarded so the terminal UI stays clean
// Returns the opened file (nil when disabled) for the caller to close
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	logPath := filepath.Join(dir, LogFileName)
	if err := rotate(logPath); err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f, nil
}

// rotate renames an oversized log file with a timestamp suffix
func rotate(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat log file %s: %w", logPath, err)
	}
	if info.Size() <= MaxLogSize {
		return nil
	}

	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("failed to rotate log file %s: %w", logPath, err)
	}
	return nil
}
