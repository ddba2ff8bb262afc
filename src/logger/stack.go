// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"slices"

	"github.com/H0llyW00dzZ/stacklog/src/internal/helper/gc"
)

// Peek returns the most recently pushed label, or "" when the stack is empty.
func (l *Logger) Peek() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.stack) == 0 {
		return ""
	}
	return l.stack[len(l.stack)-1]
}

// Push appends label to the top of the stack. It always succeeds; the result
// exists for symmetry with the logging calls.
func (l *Logger) Push(label string) bool {
	l.mu.Lock()
	l.stack = append(l.stack, label)
	l.mu.Unlock()
	return true
}

// Pop removes and returns the top label. On an empty stack it returns "" and,
// when a session is open and WARN passes the threshold, records the misuse.
func (l *Logger) Pop() string {
	label, _ := l.TryPop()
	return label
}

// TryPop is [Logger.Pop] that also returns [ErrEmptyStack] on an empty stack.
func (l *Logger) TryPop() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	label, err := l.pop()
	if err != nil {
		l.diagnose(WARN, err.Error())
	}
	return label, err
}

// pop removes the top label. l.mu must be held.
func (l *Logger) pop() (string, error) {
	n := len(l.stack)
	if n == 0 {
		return "", ErrEmptyStack
	}
	label := l.stack[n-1]
	l.stack[n-1] = ""
	l.stack = l.stack[:n-1]
	return label, nil
}

// Depth returns the number of labels on the stack.
func (l *Logger) Depth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.stack)
}

// Stack returns a copy of the stack, oldest label first.
func (l *Logger) Stack() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.stack)
}

// DumpStack writes the whole stack to the log file, oldest label first,
// regardless of the threshold. The stack is not modified.
// It returns [ErrNotInitialised] when no session is open.
func (l *Logger) DumpStack() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialised {
		return ErrNotInitialised
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	appendStackTrace(buf, l.stack)
	return l.flush(buf)
}

// PrintStackTrace is [Logger.DumpStack] without the error.
func (l *Logger) PrintStackTrace() { _ = l.DumpStack() }
