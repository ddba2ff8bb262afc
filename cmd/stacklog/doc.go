// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// stacklog is a command-line front end for the stacklog logger. It writes
// leveled records annotated with a scope stack to a log file.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/stacklog/cmd/stacklog@latest
//
// # Usage
//
//	stacklog [-f LOG_FILE] [-t THRESHOLD] COMMAND [FLAGS] [ARGS]
//
// # Commands
//
//	write   Write one record, optionally inside --frame scopes
//	trace   Enter nested scopes and dump the stack at the innermost one
//	levels  Print the severity table for the threshold
//
// # Flags
//
//	-f, --file       Log file, truncated on open [required by write and trace]
//	-t, --threshold  Least severe level written (default DEBUG)
//
// # Examples
//
// Write a warning inside two scopes:
//
//	stacklog -f app.log write -l warn --frame main --frame load "disk almost full"
//
// which produces:
//
//	[WARN] [main>load] disk almost full
//
// Trace three nested scopes:
//
//	stacklog -f trace.log trace main load parse
//
// Show which levels an INFO threshold writes:
//
//	stacklog -t info levels
package main
