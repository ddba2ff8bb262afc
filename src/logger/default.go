// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "sync"

var defaultLogger = sync.OnceValue(New)

// Default returns the process-wide Logger, creating it on first use.
// The package-level functions below all operate on it.
func Default() *Logger { return defaultLogger() }

// Initialise opens fileName on the default logger. See [Logger.Open].
func Initialise(fileName string) bool { return Default().Initialise(fileName) }

// Finalise closes the default logger. See [Logger.Close].
func Finalise() bool { return Default().Finalise() }

// SetThreshold sets the default logger's threshold.
func SetThreshold(level Level) { Default().SetThreshold(level) }

// Fatal logs at FATAL on the default logger.
func Fatal(message string) bool { return Default().Fatal(message) }

// Fatalf logs a formatted message at FATAL on the default logger.
func Fatalf(format string, args ...any) bool { return Default().Fatalf(format, args...) }

// Error logs at ERROR on the default logger.
func Error(message string) bool { return Default().Error(message) }

// Errorf logs a formatted message at ERROR on the default logger.
func Errorf(format string, args ...any) bool { return Default().Errorf(format, args...) }

// Warn logs at WARN on the default logger.
func Warn(message string) bool { return Default().Warn(message) }

// Warnf logs a formatted message at WARN on the default logger.
func Warnf(format string, args ...any) bool { return Default().Warnf(format, args...) }

// Info logs at INFO on the default logger.
func Info(message string) bool { return Default().Info(message) }

// Infof logs a formatted message at INFO on the default logger.
func Infof(format string, args ...any) bool { return Default().Infof(format, args...) }

// Debug logs at DEBUG on the default logger.
func Debug(message string) bool { return Default().Debug(message) }

// Debugf logs a formatted message at DEBUG on the default logger.
func Debugf(format string, args ...any) bool { return Default().Debugf(format, args...) }

// Peek returns the default logger's top label.
func Peek() string { return Default().Peek() }

// Push pushes label on the default logger's stack.
func Push(label string) bool { return Default().Push(label) }

// Pop pops the default logger's stack.
func Pop() string { return Default().Pop() }

// PrintStackTrace dumps the default logger's stack to its file.
func PrintStackTrace() { Default().PrintStackTrace() }

// Mark pushes label on the default logger and returns the marker that pops it.
func Mark(label string) *StackMarker { return Default().Mark(label) }

// MarkFunc marks the calling function on the default logger.
func MarkFunc() *StackMarker { return Default().Mark(callerName(1)) }

// Trace runs fn inside a marker on the default logger. See [Logger.Trace].
func Trace(label string, fn func() error) error { return Default().Trace(label, fn) }
