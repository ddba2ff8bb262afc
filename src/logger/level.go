// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is the severity attached to a record. Lower values are more severe,
// so FATAL < ERROR < WARN < INFO < DEBUG numerically.
type Level int

const (
	// FATAL marks failures the program cannot recover from. Logging at FATAL
	// never terminates the process.
	FATAL Level = iota
	// ERROR marks failed operations.
	ERROR
	// WARN marks unexpected but tolerated conditions.
	WARN
	// INFO marks normal progress.
	INFO
	// DEBUG marks diagnostic detail. It is the default threshold.
	DEBUG
)

// levelNames is indexed by Level.
var levelNames = [...]string{"FATAL", "ERROR", "WARN", "INFO", "DEBUG"}

// LevelToString returns the literal name of level.
// It returns [ErrInvalidLevel] for values outside the enumeration.
func LevelToString(level Level) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	return levelNames[level], nil
}

// String implements [fmt.Stringer]. Out-of-range values render as "UNKNOWN".
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool { return l >= FATAL && l <= DEBUG }

// Enabled reports whether a record at level l passes threshold, that is
// whether l is at least as severe as threshold.
func (l Level) Enabled(threshold Level) bool { return l <= threshold }

// Levels returns every level, most severe first.
func Levels() []Level { return []Level{FATAL, ERROR, WARN, INFO, DEBUG} }

// ParseLevel is the case-insensitive inverse of [LevelToString].
// "WARNING" is accepted as an alias of WARN.
func ParseLevel(s string) (Level, error) {
	// A Caser is stateful, so each call gets its own.
	name := cases.Upper(language.Und).String(strings.TrimSpace(s))
	if name == "WARNING" {
		return WARN, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
