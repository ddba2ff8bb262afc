// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides a leveled file logger that annotates every record with
// a trace of the scopes the program is currently in.
//
// A [Logger] owns one log file, truncated when the session is opened, a
// severity threshold and a stack of scope labels. Each record is one line:
//
//	[INFO] [main>load>parse] x=5
//
// Scopes are tracked with [StackMarker] values, created by [Logger.Mark] and
// released with a deferred call so the stack mirrors the live call structure on
// every exit path:
//
//	log := logger.New()
//	if err := log.Open("app.log"); err != nil {
//		return err
//	}
//	defer log.Close()
//
//	defer log.Mark("main").Release()
//	log.Infof("%s=%d", "x", 5)
//
// Every operation has a boolean form (Initialise, Info, ...) that reports
// whether the record was written, and an error form (Open, Log, ...) that says
// why it was not. The package-level functions operate on the process-wide
// [Default] logger.
//
// [CLILogger] is the console [Printer] used by the command-line tool.
package logger
