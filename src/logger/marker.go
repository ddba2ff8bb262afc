// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// StackMarker ties one stack entry to the scope that created it.
// The usual pattern is a deferred release right at function entry:
//
//	func parse(log *logger.Logger) error {
//		defer log.Mark("parse").Release()
//		...
//	}
//
// Markers must nest strictly: a marker's scope has to contain the scopes of
// every marker created after it, and no manual Pop may run while it is live.
// Release checks the depth it recorded and reports a violation.
type StackMarker struct {
	l     *Logger
	label string
	depth int
	once  sync.Once
	err   error
}

// Mark pushes label and returns the marker that pops it.
func (l *Logger) Mark(label string) *StackMarker {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stack = append(l.stack, label)
	return &StackMarker{l: l, label: label, depth: len(l.stack)}
}

// MarkFunc is [Logger.Mark] with the calling function's name as the label,
// in package.Function form.
func (l *Logger) MarkFunc() *StackMarker { return l.Mark(callerName(1)) }

// Trace runs fn inside a marker labelled label. The label is popped however
// fn exits, including by panic, and fn's error is returned unchanged.
func (l *Logger) Trace(label string, fn func() error) error {
	defer l.Mark(label).Release()
	return fn()
}

// Label returns the label the marker pushed.
func (m *StackMarker) Label() string { return m.label }

// Release pops one entry from the stack. Only the first call pops; later calls
// return the first call's result.
//
// If the depth at release differs from the depth right after the marker's
// push, Release still pops once, writes an ERROR record when possible and
// returns an error wrapping [ErrStackMismatch].
func (m *StackMarker) Release() error {
	if m == nil {
		return nil
	}
	m.once.Do(func() { m.err = m.l.release(m) })
	return m.err
}

func (l *Logger) release(m *StackMarker) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var err error
	if depth := len(l.stack); depth != m.depth {
		err = fmt.Errorf("%w: marker %q pushed at depth %d, released at depth %d",
			ErrStackMismatch, m.label, m.depth, depth)
		l.diagnose(ERROR, err.Error())
	}

	if _, popErr := l.pop(); popErr != nil && err == nil {
		err = popErr
	}
	return err
}

// callerName returns the function skip frames above its caller as
// "package.Function", or "unknown".
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
