// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/itersolve/pso"
	"github.com/katalvlaran/itersolve/trace"
)

func newPSOCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "pso [flags] <function> <dim> <swarm-size> <xmin> <xmax> <max-iter> <num-threads>",
		Short: "Minimise a benchmark function with particle swarm optimization",
		Long: "Minimise a benchmark function with particle swarm optimization.\n\n" +
			"Flags go before <function>; everything after it is positional, so\n" +
			"negative bounds such as -5.12 are read as numbers.\n\nFunctions: " +
			strings.Join(pso.Names(), ", "),
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPSO(cmd, f, args)
		},
	}
	bindRunFlags(cmd, f)
	// Stop flag parsing at the first positional argument: "-5" is a bound.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

type psoArgs struct {
	function   string
	obj        pso.Objective
	dim, size  int
	xmin, xmax float32
	maxIter    int
	threads    int
}

func parsePSOArgs(args []string) (psoArgs, error) {
	var (
		p   = psoArgs{function: args[0]}
		err error
	)
	if p.obj, err = pso.Lookup(p.function); err != nil {
		return p, err
	}
	if p.dim, err = parseCount("dim", args[1], 1); err != nil {
		return p, err
	}
	if p.size, err = parseCount("swarm-size", args[2], 1); err != nil {
		return p, err
	}
	if p.xmin, err = parseBound("xmin", args[3]); err != nil {
		return p, err
	}
	if p.xmax, err = parseBound("xmax", args[4]); err != nil {
		return p, err
	}
	if p.maxIter, err = parseCount("max-iter", args[5], 0); err != nil {
		return p, err
	}
	if p.threads, err = parseCount("num-threads", args[6], 1); err != nil {
		return p, err
	}

	return p, nil
}

func runPSO(cmd *cobra.Command, f *runFlags, args []string) error {
	p, err := parsePSOArgs(args)
	if err != nil {
		return err
	}
	logger := f.logger(cmd)
	logger.Println(hostInfo())

	seed := f.resolveSeed(cmd)
	swarm, err := pso.NewSwarm(p.obj, p.dim, p.size, p.xmin, p.xmax, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	logger.Printf("pso function=%s dim=%d swarm=%d bounds=[%g, %g] iterations=%d threads=%d seed=%d",
		p.function, p.dim, p.size, p.xmin, p.xmax, p.maxIter, p.threads, seed)

	seqTrace, parTrace := trace.NewRecorder("sequential"), trace.NewRecorder("parallel")
	record := func(rec *trace.Recorder) func(int, int, float32) {
		return func(it, _ int, fitness float32) { rec.Add(it, float64(fitness)) }
	}
	opts := pso.Options{MaxIterations: p.maxIter, Seed: seed}

	ref := swarm.Clone()
	opts.Progress = record(seqTrace)
	start := time.Now()
	gs, err := pso.SolveSequential(ref, opts)
	if err != nil {
		return err
	}
	seqElapsed := time.Since(start)
	logger.Printf("sequential: best=%d fitness=%g elapsed=%s", gs, ref.Particles[gs].Fitness, seqElapsed)

	opts.Workers = p.threads
	opts.Progress = record(parTrace)
	start = time.Now()
	g, err := pso.Solve(swarm, opts)
	if err != nil {
		return err
	}
	parElapsed := time.Since(start)
	best := &swarm.Particles[g]
	logger.Printf("parallel: best=%d fitness=%g elapsed=%s", g, best.Fitness, parElapsed)
	logger.Printf("best particle:\n%s", best)

	if f.plot != "" {
		chart := trace.Chart{Title: "PSO " + p.function, XLabel: "iteration", YLabel: "best fitness", LogY: true}
		if perr := trace.Save(f.plot, chart, seqTrace, parTrace); perr != nil {
			logger.Printf("chart: %v", perr)
		} else {
			logger.Printf("chart written to %s", f.plot)
		}
	}

	position := lo.Map(best.PBest, func(v float32, _ int) string {
		return strconv.FormatFloat(float64(v), 'g', 6, 32)
	})
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%d\t%.4f\t%g\t%s\n",
		p.function, p.dim, p.size, p.threads,
		speedup(seqElapsed.Seconds(), parElapsed.Seconds()),
		best.Fitness, strings.Join(position, ","))

	return err
}
