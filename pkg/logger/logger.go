// Package logger provides the global file-backed logger for the client
// library and CLI. Until Init is called, Info and Debug are dropped while
// Warn and Error fall back to stderr so deprecation notices and failures
// still reach interactive callers.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	globalLogger *log.Logger
	logFile      *os.File
	mu           sync.Mutex
)

// Init initializes the global logger with the specified log file path.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	// Close previous log file if exists
	if logFile != nil {
		logFile.Close()
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	globalLogger = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
		globalLogger = nil
	}
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	logTo(nil, "[INFO] ", format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	logTo(nil, "[DEBUG] ", format, v...)
}

// Warn logs a warning message, falling back to stderr when no log file is
// configured.
func Warn(format string, v ...interface{}) {
	logTo(os.Stderr, "[WARN] ", format, v...)
}

// Error logs an error message, falling back to stderr when no log file is
// configured.
func Error(format string, v ...interface{}) {
	logTo(os.Stderr, "[ERROR] ", format, v...)
}

func logTo(fallback io.Writer, prefix, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf(prefix+format, v...)
		return
	}
	if fallback != nil {
		fmt.Fprintf(fallback, prefix+format+"\n", v...)
	}
}

// GetWriter returns the underlying writer for components that log directly.
func GetWriter() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		return logFile
	}
	return io.Discard
}
