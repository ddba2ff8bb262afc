// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/stacklog/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/stacklog/src/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// ErrLogFileRequired is returned when a command that writes records runs without -f.
var ErrLogFileRequired = errors.New("log file is required (use -f)")

// options holds the flags shared by every subcommand.
type options struct {
	file      string
	threshold string
}

// Execute runs the root command with os.Args and reports through log.
func Execute(ctx context.Context, version string, log logger.Printer) error {
	return newRootCommand(version, log).ExecuteContext(ctx)
}

func newRootCommand(version string, log logger.Printer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Leveled file logger with scope stack traces",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "log file to write, truncated on open")
	rootCmd.PersistentFlags().StringVarP(&opts.threshold, "threshold", "t", logger.DEBUG.String(), "least severe level that is written")

	rootCmd.AddCommand(
		newWriteCommand(opts, log),
		newTraceCommand(opts, log),
		newLevelsCommand(opts),
	)
	return rootCmd
}

func newWriteCommand(opts *options, log logger.Printer) *cobra.Command {
	var (
		level  string
		frames []string
	)

	cmd := &cobra.Command{
		Use:   "write [flags] MESSAGE...",
		Short: "Write one record to the log file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logger.ParseLevel(level)
			if err != nil {
				return err
			}

			return withSession(opts, func(l *logger.Logger) error {
				for _, frame := range frames {
					defer l.Mark(frame).Release()
				}

				err := l.Log(lvl, strings.Join(args, " "))
				switch {
				case errors.Is(err, logger.ErrSuppressed):
					log.Printf("%s record suppressed by threshold %s", lvl, l.Threshold())
					return nil
				case err != nil:
					return err
				}

				log.Printf("wrote %s record to %s", lvl, l.FileName())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", logger.INFO.String(), "level of the record")
	cmd.Flags().StringArrayVar(&frames, "frame", nil, "scope to enter before writing, outermost first (repeatable)")
	return cmd
}

func newTraceCommand(opts *options, log logger.Printer) *cobra.Command {
	return &cobra.Command{
		Use:   "trace [flags] LABEL...",
		Short: "Enter nested scopes, dump the stack at the innermost one, then unwind",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(l *logger.Logger) error {
				if err := enter(cmd.Context(), l, args); err != nil {
					return err
				}
				if depth := l.Depth(); depth != 0 {
					return fmt.Errorf("stack not empty after unwinding: depth %d", depth)
				}

				log.Printf("traced %d scopes into %s", len(args), l.FileName())
				return nil
			})
		},
	}
}

func newLevelsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List severity levels and whether the threshold writes them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := logger.ParseLevel(opts.threshold)
			if err != nil {
				return err
			}
			return renderLevels(cmd.OutOrStdout(), threshold)
		},
	}
}

// withSession opens the log file named by opts, runs fn and closes the file.
func withSession(opts *options, fn func(*logger.Logger) error) (err error) {
	if opts.file == "" {
		return ErrLogFileRequired
	}

	threshold, err := logger.ParseLevel(opts.threshold)
	if err != nil {
		return err
	}

	l := logger.New()
	l.SetThreshold(threshold)
	if err := l.Open(opts.file); err != nil {
		return err
	}
	defer func() {
		if cerr := l.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(l)
}

// enter opens one scope per label, recursively, and dumps the stack once all
// of them are live. Cancellation is checked before each scope.
func enter(ctx context.Context, l *logger.Logger, labels []string) error {
	if len(labels) == 0 {
		return l.DumpStack()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	defer l.Mark(labels[0]).Release()

	l.Debugf("enter %s (depth %d)", labels[0], l.Depth())
	err := enter(ctx, l, labels[1:])
	l.Debugf("leave %s", labels[0])
	return err
}

// renderLevels writes a table of every level with its rank and whether a
// logger at threshold writes it.
func renderLevels(w io.Writer, threshold logger.Level) error {
	levels := logger.Levels()
	rows := make([][]string, 0, len(levels))
	for _, level := range levels {
		written := "no"
		if level.Enabled(threshold) {
			written = "yes"
		}
		rows = append(rows, []string{level.String(), strconv.Itoa(int(level)), written})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Level", "Rank", "Written at "+threshold.String())
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build level table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render level table: %w", err)
	}
	return nil
}
