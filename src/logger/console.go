// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"
)

// Printer is the minimal printing surface shared by the console logger and
// the file-backed [Logger], which prints at INFO.
type Printer interface {
	// Printf formats and prints a message.
	Printf(format string, v ...any)
	// Println prints its operands separated by spaces.
	Println(v ...any)
}

// CLILogger implements Printer using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
//
// CLILogger is safe for concurrent use by multiple goroutines.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger on stdout with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination. A nil writer discards output.
func (c *CLILogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.logger.SetOutput(w)
}
