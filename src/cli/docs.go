// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for stacklog.
// It implements a Cobra-based CLI with three commands: write appends a single
// record inside optional scope frames, trace walks a chain of nested scopes and
// dumps the stack at the innermost one, and levels prints the severity table
// for a threshold. User-facing messages go through a [logger.Printer].
package cli
