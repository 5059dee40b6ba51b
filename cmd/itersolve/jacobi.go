// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/itersolve/jacobi"
	"github.com/katalvlaran/itersolve/matrix"
	"github.com/katalvlaran/itersolve/trace"
)

type jacobiFlags struct {
	runFlags
	maxIter   int
	threshold float64
	verify    bool
}

func newJacobiCmd() *cobra.Command {
	f := &jacobiFlags{}
	cmd := &cobra.Command{
		Use:   "jacobi <matrix-size> <num-threads>",
		Short: "Solve a random diagonally dominant system sequentially and in parallel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJacobi(cmd, f, args)
		},
	}
	bindRunFlags(cmd, &f.runFlags)
	cmd.Flags().IntVar(&f.maxIter, "max-iter", jacobi.DefaultMaxIterations, "iteration cap")
	cmd.Flags().Float64Var(&f.threshold, "threshold", jacobi.DefaultThreshold, "stop when the step norm falls below this value")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "compare the parallel answer with a direct LU solve (O(n³))")

	return cmd
}

func runJacobi(cmd *cobra.Command, f *jacobiFlags, args []string) error {
	n, err := parseCount("matrix-size", args[0], 1)
	if err != nil {
		return err
	}
	threads, err := parseCount("num-threads", args[1], 1)
	if err != nil {
		return err
	}
	logger := f.logger(cmd)
	logger.Println(hostInfo())

	seed := f.resolveSeed(cmd)
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewDiagonallyDominant(n, rng)
	if err != nil {
		return fmt.Errorf("matrix A: %w", err)
	}
	b, err := matrix.NewRandom(n, 1, rng, matrix.DefaultMinValue, matrix.DefaultMaxValue)
	if err != nil {
		return fmt.Errorf("matrix B: %w", err)
	}
	logger.Printf("jacobi n=%d threads=%d seed=%d max-iter=%d threshold=%g", n, threads, seed, f.maxIter, f.threshold)

	seqTrace, parTrace := trace.NewRecorder("sequential"), trace.NewRecorder("parallel")
	opts := jacobi.DefaultOptions()
	opts.MaxIterations = f.maxIter
	opts.Threshold = f.threshold

	xs, err := matrix.NewVector(n)
	if err != nil {
		return err
	}
	opts.Progress = seqTrace.Add
	seq, err := jacobi.SolveSequential(a, xs, b, opts)
	if err != nil {
		return err
	}
	report(logger, "sequential", a, xs, b, seq)

	xp, err := matrix.NewVector(n)
	if err != nil {
		return err
	}
	opts.Workers = threads
	opts.Progress = parTrace.Add
	par, err := jacobi.Solve(a, xp, b, opts)
	if err != nil {
		return err
	}
	report(logger, "parallel", a, xp, b, par)

	if dist, derr := matrix.Distance(xs, xp); derr == nil {
		logger.Printf("distance between solutions: %g", dist)
	}
	if f.verify {
		ref, err := matrix.SolveDirect(a, b)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		dev, err := matrix.MaxDeviation(xp, ref)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		logger.Printf("max deviation from LU solution: %g", dev)
	}

	if f.plot != "" {
		chart := trace.Chart{Title: fmt.Sprintf("Jacobi n=%d", n), XLabel: "iteration", YLabel: "step norm", LogY: true}
		if perr := trace.Save(f.plot, chart, seqTrace, parTrace); perr != nil {
			logger.Printf("chart: %v", perr)
		} else {
			logger.Printf("chart written to %s", f.plot)
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%.4f\n", n, threads,
		speedup(seq.Elapsed.Seconds(), par.Elapsed.Seconds()))

	return err
}

func report(logger *log.Logger, label string, a, x, b *matrix.Dense, res jacobi.Result) {
	logger.Printf("%s: iterations=%d converged=%v mse=%g elapsed=%s",
		label, res.Iterations, res.Converged, res.Residual, res.Elapsed)
	d, err := matrix.Diagnose(a, x, b)
	if err != nil {
		logger.Printf("%s: diagnostics: %v", label, err)
		return
	}
	logger.Printf("%s: max diff=%g avg diff=%g residual=%g", label, d.MaxDiff, d.AvgDiff, d.ResidualNorm)
}
