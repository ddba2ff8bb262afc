// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/stacklog/src/internal/helper/gc"
)

// logFile is the part of [os.File] the logger needs.
type logFile interface {
	io.Writer
	Close() error
}

// openFile opens the backing file, truncating any previous content.
// Tests replace it to inject failing writers.
var openFile = func(name string) (logFile, error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Logger writes leveled records to a single file and keeps a stack of scope
// labels that annotates every record.
//
// A Logger must be created with [New]. All methods are safe for concurrent use
// by multiple goroutines: each one holds the logger's lock for its whole
// duration, so records are never interleaved. The stack is shared by every
// goroutine using the same Logger, which makes markers meaningful only when a
// single goroutine drives the nesting.
type Logger struct {
	mu          sync.Mutex
	threshold   Level
	initialised bool
	fileName    string
	stack       []string
	stream      logFile
}

// New returns an uninitialised Logger whose threshold is DEBUG, so every level
// passes until [Logger.SetThreshold] says otherwise.
func New() *Logger { return &Logger{threshold: DEBUG} }

// Open opens fileName for writing, truncating it, and starts a session.
//
// It returns [ErrAlreadyInitialised] if a session is open; that session keeps
// its file. It returns an error wrapping [ErrFileOpen] and the OS error when the
// file cannot be opened.
func (l *Logger) Open(fileName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialised {
		return fmt.Errorf("%w: %s is open", ErrAlreadyInitialised, l.fileName)
	}

	f, err := openFile(fileName)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrFileOpen, fileName, err)
	}

	l.stream = f
	l.fileName = fileName
	l.initialised = true
	return nil
}

// Close flushes and closes the log file and ends the session. The stack and
// the threshold are kept. It returns [ErrNotInitialised] when no session is open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialised {
		return ErrNotInitialised
	}

	f := l.stream
	l.stream = nil
	l.initialised = false

	// Records are written unbuffered; Sync fails on some special files and
	// only the close result matters to the caller.
	if s, ok := f.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("logger: close %q: %w", l.fileName, err)
	}
	return nil
}

// Initialise is the boolean form of [Logger.Open].
func (l *Logger) Initialise(fileName string) bool { return l.Open(fileName) == nil }

// Finalise is the boolean form of [Logger.Close].
func (l *Logger) Finalise() bool { return l.Close() == nil }

// Initialised reports whether a session is open.
func (l *Logger) Initialised() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialised
}

// FileName returns the path given to the most recent successful Open.
func (l *Logger) FileName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileName
}

// SetThreshold sets the least severe level that is still written.
func (l *Logger) SetThreshold(level Level) {
	l.mu.Lock()
	l.threshold = level
	l.mu.Unlock()
}

// Threshold returns the current threshold.
func (l *Logger) Threshold() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// Log writes message verbatim at level, prefixed with the level and the
// current stack.
//
// The returned error is [ErrNotInitialised] without an open session,
// [ErrInvalidLevel] for a level outside the enumeration, [ErrSuppressed] when
// the threshold drops the record, or wraps [ErrWrite] when the file rejects it.
func (l *Logger) Log(level Level, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.accept(level); err != nil {
		return err
	}
	return l.write(level, message)
}

// Logf formats according to a [fmt] format specifier and logs the result with
// [Logger.Log]. Logf("%s=%d", "x", 5) and Log(level, "x=5") write the same record.
//
// Arguments are formatted before the lock is taken, so a [fmt.Stringer]
// argument may itself use the logger.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	return l.Log(level, fmt.Sprintf(format, args...))
}

// accept reports why a record at level would not be written. l.mu must be held.
func (l *Logger) accept(level Level) error {
	switch {
	case !l.initialised:
		return ErrNotInitialised
	case !level.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	case !level.Enabled(l.threshold):
		return ErrSuppressed
	}
	return nil
}

// write renders one record and hands it to the file in a single call.
// l.mu must be held and the session must be open.
func (l *Logger) write(level Level, message string) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	appendRecord(buf, level, l.stack, message)
	return l.flush(buf)
}

// flush copies buf to the open file.
func (l *Logger) flush(buf gc.Buffer) error {
	if _, err := buf.WriteTo(l.stream); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, l.fileName, err)
	}
	return nil
}

// diagnose writes an internal report about misuse of the stack. It is silent
// when the session is closed or the threshold drops level.
func (l *Logger) diagnose(level Level, message string) {
	if l.accept(level) != nil {
		return
	}
	_ = l.write(level, message)
}

// Fatal logs message at FATAL. It does not terminate the process.
// The result is false when the message was not written, for whatever reason.
func (l *Logger) Fatal(message string) bool { return l.Log(FATAL, message) == nil }

// Fatalf logs a formatted message at FATAL. It does not terminate the process.
func (l *Logger) Fatalf(format string, args ...any) bool {
	return l.Logf(FATAL, format, args...) == nil
}

// Error logs message at ERROR.
func (l *Logger) Error(message string) bool { return l.Log(ERROR, message) == nil }

// Errorf logs a formatted message at ERROR.
func (l *Logger) Errorf(format string, args ...any) bool {
	return l.Logf(ERROR, format, args...) == nil
}

// Warn logs message at WARN.
func (l *Logger) Warn(message string) bool { return l.Log(WARN, message) == nil }

// Warnf logs a formatted message at WARN.
func (l *Logger) Warnf(format string, args ...any) bool {
	return l.Logf(WARN, format, args...) == nil
}

// Info logs message at INFO.
func (l *Logger) Info(message string) bool { return l.Log(INFO, message) == nil }

// Infof logs a formatted message at INFO.
func (l *Logger) Infof(format string, args ...any) bool {
	return l.Logf(INFO, format, args...) == nil
}

// Debug logs message at DEBUG.
func (l *Logger) Debug(message string) bool { return l.Log(DEBUG, message) == nil }

// Debugf logs a formatted message at DEBUG.
func (l *Logger) Debugf(format string, args ...any) bool {
	return l.Logf(DEBUG, format, args...) == nil
}

// Printf logs at INFO so a Logger can stand in for any [Printer].
func (l *Logger) Printf(format string, v ...any) { _ = l.Logf(INFO, format, v...) }

// Println logs its operands at INFO, spaced as [fmt.Sprintln] does.
func (l *Logger) Println(v ...any) {
	_ = l.Log(INFO, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
