// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/stacklog/src/internal/helper/gc"
)

const (
	// frameSeparator joins stack labels inside the record's stack context.
	frameSeparator = '>'
	// tracePrefix starts every line of a stack dump.
	tracePrefix = "[TRACE] "
)

// lineEscaper keeps each record on a single line.
var lineEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// appendRecord renders
//
//	[LEVEL] [outer>inner] message
//
// followed by a newline. An empty stack renders as "[]".
func appendRecord(buf gc.Buffer, level Level, stack []string, message string) {
	buf.WriteByte('[')
	buf.WriteString(level.String())
	buf.WriteString("] [")
	for i, frame := range stack {
		if i > 0 {
			buf.WriteByte(frameSeparator)
		}
		lineEscaper.WriteString(buf, frame)
	}
	buf.WriteString("] ")
	lineEscaper.WriteString(buf, message)
	buf.WriteByte('\n')
}

// appendStackTrace renders a header line followed by one line per frame,
// oldest first:
//
//	[TRACE] stack trace, depth 2
//	[TRACE]   #0 outer
//	[TRACE]   #1 inner
func appendStackTrace(buf gc.Buffer, stack []string) {
	buf.WriteString(tracePrefix)
	buf.WriteString("stack trace, depth ")
	buf.WriteString(strconv.Itoa(len(stack)))
	buf.WriteByte('\n')

	for i, frame := range stack {
		buf.WriteString(tracePrefix)
		buf.WriteString("  #")
		buf.WriteString(strconv.Itoa(i))
		buf.WriteByte(' ')
		lineEscaper.WriteString(buf, frame)
		buf.WriteByte('\n')
	}
}
