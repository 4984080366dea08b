// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg    config
	runID  string
	logger *slog.Logger
	out    io.Writer
}

func newRootCmd(cfg config) *cobra.Command {
	a := &app{cfg: cfg}
	var logLevel string

	root := &cobra.Command{
		Use:           "hafbench",
		Short:         "Time and cross-check the hafnian engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := parseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.out = cmd.OutOrStdout()
			a.runID = uuid.NewString()
			w := cmd.ErrOrStderr()
			a.logger = slog.New(tint.NewHandler(w, &tint.Options{
				Level:      lvl,
				TimeFormat: "15:04:05.000",
				NoColor:    !isTerminal(w),
			})).With("run_id", a.runID)
			for _, s := range a.cfg.warnings {
				a.logger.Warn("ignoring malformed setting", "setting", s)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.logLevel, "debug|info|warn|error (env "+envLogLevel+")")

	root.AddCommand(
		newRunCmd(a),
		newVerifyCmd(a),
		newHistoryCmd(a),
		newVersionCmd(a),
	)

	return root
}

// isTerminal reports whether w is a terminal; colors are dropped otherwise.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
