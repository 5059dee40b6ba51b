// Package trace records per-iteration convergence values of the solvers and
// renders them as line charts through gonum.org/v1/plot.
//
// A Recorder is fed from a solver's Progress callback:
//
//	rec := trace.NewRecorder("parallel")
//	opts.Progress = func(it int, mse float64) { rec.Add(it, mse) }
//	...
//	err := trace.Save("jacobi.svg", trace.Chart{Title: "Jacobi", LogY: true}, rec)
//
// The output format follows the file extension (png, svg or pdf).
package trace
