// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

type executableCase struct {
	name     string
	args     []string
	expected string
}

func TestGetExecutableName(t *testing.T) {
	tests := []executableCase{
		{name: "Relative path", args: []string{"./stacklog"}, expected: "stacklog"},
		{name: "Just filename", args: []string{"stacklog"}, expected: "stacklog"},
		{name: "Empty args", args: []string{}, expected: FallbackName},
		{name: "Empty first arg", args: []string{""}, expected: FallbackName},
		{name: "Foreign windows separators", args: []string{"C:\\tools\\bin\\stacklog.exe"}, expected: "stacklog"},
	}

	if runtime.GOOS != "windows" {
		tests = append(tests,
			executableCase{name: "Unix absolute path", args: []string{"/usr/local/bin/stacklog"}, expected: "stacklog"},
			executableCase{name: "Unix system path", args: []string{"/bin/ls"}, expected: "ls"},
		)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			os.Args = tt.args
			defer func() {
				os.Args = origArgs
			}()

			assert.Equal(t, tt.expected, GetExecutableName(), "input %q", tt.args)
		})
	}
}
