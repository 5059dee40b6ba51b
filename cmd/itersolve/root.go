// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"
)

// runFlags are shared by both subcommands.
type runFlags struct {
	seed  int64
	plot  string
	quiet bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "itersolve",
		Short:         "Parallel Jacobi and particle-swarm solvers with speedup reporting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newJacobiCmd(), newPSOCmd())

	return root
}

// bindRunFlags registers the flags common to both subcommands.
func bindRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default: derived from the clock)")
	cmd.Flags().StringVar(&f.plot, "plot", "", "write a convergence chart to `FILE` (.png, .svg or .pdf)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress diagnostics on stderr")
}

// resolveSeed returns the --seed value when given, a clock-derived seed otherwise.
func (f *runFlags) resolveSeed(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("seed") {
		return f.seed
	}

	return time.Now().UnixNano()
}

// logger writes diagnostics to the command's stderr unless --quiet is set.
func (f *runFlags) logger(cmd *cobra.Command) *log.Logger {
	var w io.Writer = cmd.ErrOrStderr()
	if f.quiet {
		w = io.Discard
	}

	return log.New(w, "itersolve: ", 0)
}
