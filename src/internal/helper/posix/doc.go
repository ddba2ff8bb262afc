// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// The stacklog command uses it for its Cobra usage line:
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Leveled file logger with scope stack traces",
//	}
//
// Behavior per platform:
//
//   - Linux/macOS: "/usr/bin/stacklog" → "stacklog"
//   - Windows: "C:\bin\stacklog.exe" → "stacklog"
//   - Fallback: Empty args → "stacklog"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
