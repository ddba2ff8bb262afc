// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/stacklog/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openLogger returns an open logger writing to a fresh file and closes it at cleanup.
func openLogger(t *testing.T) (*logger.Logger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.log")
	log := logger.New()
	require.NoError(t, log.Open(path), "failed to open log file")
	t.Cleanup(func() {
		if log.Initialised() {
			log.Close()
		}
	})
	return log, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read log file")
	return string(content)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "LevelToString",
			testFunc: func(t *testing.T) {
				expected := map[logger.Level]string{
					logger.FATAL: "FATAL",
					logger.ERROR: "ERROR",
					logger.WARN:  "WARN",
					logger.INFO:  "INFO",
					logger.DEBUG: "DEBUG",
				}
				for level, want := range expected {
					got, err := logger.LevelToString(level)
					require.NoError(t, err)
					assert.Equal(t, want, got)
					assert.Equal(t, want, level.String())
				}
			},
		},
		{
			name: "OutOfRange",
			testFunc: func(t *testing.T) {
				for _, level := range []logger.Level{-1, 5, 42} {
					_, err := logger.LevelToString(level)
					assert.ErrorIs(t, err, logger.ErrInvalidLevel, "level %d", int(level))
					assert.Equal(t, "UNKNOWN", level.String())
					assert.False(t, level.Valid())
				}
			},
		},
		{
			name: "Ordering",
			testFunc: func(t *testing.T) {
				levels := logger.Levels()
				require.Len(t, levels, 5)
				assert.Equal(t, logger.FATAL, levels[0], "most severe first")
				assert.Equal(t, logger.DEBUG, levels[4], "least severe last")

				assert.True(t, logger.FATAL.Enabled(logger.ERROR))
				assert.True(t, logger.WARN.Enabled(logger.WARN))
				assert.False(t, logger.DEBUG.Enabled(logger.INFO))
			},
		},
		{
			name: "ParseLevel",
			testFunc: func(t *testing.T) {
				cases := map[string]logger.Level{
					"fatal":     logger.FATAL,
					"Error":     logger.ERROR,
					"WARN":      logger.WARN,
					" warning ": logger.WARN,
					"info":      logger.INFO,
					"debug":     logger.DEBUG,
				}
				for in, want := range cases {
					got, err := logger.ParseLevel(in)
					require.NoError(t, err, "input %q", in)
					assert.Equal(t, want, got, "input %q", in)
				}

				_, err := logger.ParseLevel("verbose")
				assert.ErrorIs(t, err, logger.ErrInvalidLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestThreshold(t *testing.T) {
	for _, threshold := range logger.Levels() {
		for _, level := range logger.Levels() {
			t.Run(threshold.String()+"/"+level.String(), func(t *testing.T) {
				log, path := openLogger(t)
				log.SetThreshold(threshold)
				assert.Equal(t, threshold, log.Threshold())

				err := log.Log(level, "probe")
				require.NoError(t, log.Close())

				content := readLog(t, path)
				if level <= threshold {
					require.NoError(t, err)
					assert.Equal(t, "["+level.String()+"] [] probe\n", content)
				} else {
					assert.ErrorIs(t, err, logger.ErrSuppressed)
					assert.Empty(t, content, "suppressed record must not be written")
				}
			})
		}
	}
}

func TestLeveledCalls(t *testing.T) {
	log, path := openLogger(t)

	assert.True(t, log.Fatal("f"))
	assert.True(t, log.Fatalf("f%d", 1))
	assert.True(t, log.Error("e"))
	assert.True(t, log.Errorf("e%d", 1))
	assert.True(t, log.Warn("w"))
	assert.True(t, log.Warnf("w%d", 1))
	assert.True(t, log.Info("i"))
	assert.True(t, log.Infof("i%d", 1))
	assert.True(t, log.Debug("d"))
	assert.True(t, log.Debugf("d%d", 1))

	log.SetThreshold(logger.WARN)
	assert.False(t, log.Info("dropped"), "INFO is below WARN")
	assert.False(t, log.Debugf("dropped %d", 2), "DEBUG is below WARN")
	assert.True(t, log.Warn("kept"))

	require.NoError(t, log.Close())

	expected := strings.Join([]string{
		"[FATAL] [] f",
		"[FATAL] [] f1",
		"[ERROR] [] e",
		"[ERROR] [] e1",
		"[WARN] [] w",
		"[WARN] [] w1",
		"[INFO] [] i",
		"[INFO] [] i1",
		"[DEBUG] [] d",
		"[DEBUG] [] d1",
		"[WARN] [] kept",
	}, "\n") + "\n"
	assert.Equal(t, expected, readLog(t, path))
}

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "BeforeInitialise",
			testFunc: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "never.log")
				log := logger.New()

				assert.False(t, log.Info("nobody hears this"))
				assert.False(t, log.Fatalf("%s", "nor this"))
				assert.ErrorIs(t, log.Log(logger.ERROR, "x"), logger.ErrNotInitialised)
				assert.ErrorIs(t, log.DumpStack(), logger.ErrNotInitialised)
				assert.False(t, log.Finalise())

				_, err := os.Stat(path)
				assert.True(t, os.IsNotExist(err), "no file should be created")
			},
		},
		{
			name: "ReopenSamePath",
			testFunc: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "cycle.log")
				log := logger.New()

				for i := range 3 {
					require.True(t, log.Initialise(path), "session %d", i)
					assert.True(t, log.Initialised())
					assert.Equal(t, path, log.FileName())
					assert.True(t, log.Infof("session %d", i))
					require.True(t, log.Finalise(), "session %d", i)
					assert.False(t, log.Initialised())

					assert.Equal(t, fmt.Sprintf("[INFO] [] session %d\n", i), readLog(t, path),
						"file is truncated on every open")
				}
			},
		},
		{
			name: "DoubleInitialise",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)
				other := filepath.Join(t.TempDir(), "other.log")

				assert.False(t, log.Initialise(other))
				assert.ErrorIs(t, log.Open(path), logger.ErrAlreadyInitialised)
				assert.Equal(t, path, log.FileName(), "first session must be kept")

				assert.True(t, log.Info("still usable"))
				require.NoError(t, log.Close())

				assert.Equal(t, "[INFO] [] still usable\n", readLog(t, path))
				_, err := os.Stat(other)
				assert.True(t, os.IsNotExist(err), "rejected path must not be created")
			},
		},
		{
			name: "OpenFailure",
			testFunc: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "missing", "dir", "app.log")
				log := logger.New()

				err := log.Open(path)
				assert.ErrorIs(t, err, logger.ErrFileOpen)
				assert.ErrorIs(t, err, os.ErrNotExist)
				assert.False(t, log.Initialised())
				assert.False(t, log.Info("not written"))
			},
		},
		{
			name: "FinaliseTwice",
			testFunc: func(t *testing.T) {
				log, _ := openLogger(t)

				assert.True(t, log.Finalise())
				assert.False(t, log.Finalise())
				assert.ErrorIs(t, log.Close(), logger.ErrNotInitialised)
			},
		},
		{
			name: "StackSurvivesSession",
			testFunc: func(t *testing.T) {
				log, _ := openLogger(t)
				log.Push("main")
				require.NoError(t, log.Close())

				assert.Equal(t, "main", log.Peek())
				assert.Equal(t, 1, log.Depth())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestRecordFormat(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "FormatMatchesPlain",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)

				log.Infof("%s=%d", "x", 5)
				log.Info("x=5")
				require.NoError(t, log.Close())

				lines := strings.Split(strings.TrimSuffix(readLog(t, path), "\n"), "\n")
				require.Len(t, lines, 2)
				assert.Equal(t, lines[0], lines[1])
				assert.Equal(t, "[INFO] [] x=5", lines[0])
			},
		},
		{
			name: "PlainPathIsVerbatim",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)

				log.Warn("100% done %s")
				require.NoError(t, log.Close())

				assert.Equal(t, "[WARN] [] 100% done %s\n", readLog(t, path))
			},
		},
		{
			name: "FormatVerbs",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)

				log.Debugf("%d %05.2f %q %x %v %t", 7, 3.14159, "s", 255, []int{1, 2}, true)
				require.NoError(t, log.Close())

				assert.Equal(t, "[DEBUG] [] 7 03.14 \"s\" ff [1 2] true\n", readLog(t, path))
			},
		},
		{
			name: "StackContext",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)

				log.Push("main")
				log.Push("load")
				log.Push("parse")
				log.Error("bad token")
				log.Pop()
				log.Info("back in load")
				require.NoError(t, log.Close())

				assert.Equal(t, "[ERROR] [main>load>parse] bad token\n[INFO] [main>load] back in load\n",
					readLog(t, path))
			},
		},
		{
			name: "SingleLine",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)

				log.Info("first\nsecond\r\nthird")
				require.NoError(t, log.Close())

				assert.Equal(t, `[INFO] [] first\nsecond\r\nthird`+"\n", readLog(t, path))
			},
		},
		{
			name: "Printer",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)

				var p logger.Printer = log
				p.Printf("answer %d", 42)
				p.Println("test", "message", 1)
				require.NoError(t, log.Close())

				assert.Equal(t, "[INFO] [] answer 42\n[INFO] [] test message 1\n", readLog(t, path))
			},
		},
		{
			name: "InvalidLevel",
			testFunc: func(t *testing.T) {
				log, path := openLogger(t)

				assert.ErrorIs(t, log.Log(logger.Level(9), "x"), logger.ErrInvalidLevel)
				assert.ErrorIs(t, log.Logf(logger.Level(-1), "%s", "x"), logger.ErrInvalidLevel)
				require.NoError(t, log.Close())

				assert.Empty(t, readLog(t, path))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestConcurrentLogging(t *testing.T) {
	log, path := openLogger(t)

	const numGoroutines = 50
	const messagesPerGoroutine = 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				assert.True(t, log.Infof("goroutine %d message %d", id, j))
			}
		}(i)
	}

	wg.Wait()
	require.NoError(t, log.Close())

	lines := strings.Split(strings.TrimSpace(readLog(t, path)), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine)

	record := regexp.MustCompile(`^\[INFO\] \[\] goroutine \d+ message \d+$`)
	for i, line := range lines {
		assert.Regexp(t, record, line, "line %d is not a whole record", i+1)
	}
}
