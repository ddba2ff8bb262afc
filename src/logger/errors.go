// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "errors"

var (
	// ErrNotInitialised is returned by writes and Close while no log file is open.
	ErrNotInitialised = errors.New("logger: not initialised")
	// ErrAlreadyInitialised is returned by Open while a session is already open.
	// The open session is left untouched.
	ErrAlreadyInitialised = errors.New("logger: already initialised")
	// ErrFileOpen wraps the operating system error when the log file cannot be opened.
	ErrFileOpen = errors.New("logger: cannot open log file")
	// ErrSuppressed reports a record dropped by the threshold. It is not a failure.
	ErrSuppressed = errors.New("logger: suppressed by threshold")
	// ErrInvalidLevel is returned for levels outside FATAL..DEBUG.
	ErrInvalidLevel = errors.New("logger: invalid level")
	// ErrWrite wraps the I/O error when a record could not be written.
	ErrWrite = errors.New("logger: write failed")
	// ErrEmptyStack is returned by TryPop on an empty stack.
	ErrEmptyStack = errors.New("logger: pop on empty stack")
	// ErrStackMismatch is returned by StackMarker.Release when the stack depth
	// differs from the depth recorded when the marker was created.
	ErrStackMismatch = errors.New("logger: stack depth mismatch")
)
