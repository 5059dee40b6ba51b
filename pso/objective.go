// SPDX-License-Identifier: MIT

package pso

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
)

// Objective is a fitness function over ℝ^dim; lower is better.
// It must be pure: the parallel sweep calls it concurrently.
type Objective func(x []float32) float32

var registry = map[string]Objective{
	"sphere":     Sphere,
	"rastrigin":  Rastrigin,
	"schwefel":   Schwefel,
	"rosenbrock": Rosenbrock,
	"ackley":     Ackley,
}

// Lookup returns the named objective.
func Lookup(name string) (Objective, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", name, Names(), ErrUnknownFunction)
	}

	return fn, nil
}

// Names lists the registered objective names in lexical order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)

	return names
}

// Sphere is Σ x², minimum 0 at the origin.
func Sphere(x []float32) float32 {
	var s float64
	for _, v := range x {
		s += float64(v) * float64(v)
	}

	return float32(s)
}

// Rastrigin is 10n + Σ (x² − 10 cos 2πx), minimum 0 at the origin.
func Rastrigin(x []float32) float32 {
	s := 10 * float64(len(x))
	for _, v := range x {
		f := float64(v)
		s += f*f - 10*math.Cos(2*math.Pi*f)
	}

	return float32(s)
}

// Schwefel is 418.9829n − Σ x sin √|x|, minimum ≈ 0 at x_i ≈ 420.9687.
func Schwefel(x []float32) float32 {
	s := 418.9829 * float64(len(x))
	for _, v := range x {
		f := float64(v)
		s -= f * math.Sin(math.Sqrt(math.Abs(f)))
	}

	return float32(s)
}

// Rosenbrock is Σ 100(x_{i+1} − x_i²)² + (1 − x_i)², minimum 0 at (1, …, 1).
// In one dimension it reduces to (1 − x)².
func Rosenbrock(x []float32) float32 {
	if len(x) == 1 {
		d := 1 - float64(x[0])
		return float32(d * d)
	}
	var s float64
	for i := 0; i+1 < len(x); i++ {
		a, b := float64(x[i]), float64(x[i+1])
		s += 100*(b-a*a)*(b-a*a) + (1-a)*(1-a)
	}

	return float32(s)
}

// Ackley is the n-dimensional Ackley function, minimum 0 at the origin.
func Ackley(x []float32) float32 {
	if len(x) == 0 {
		return 0
	}
	n := float64(len(x))
	var sq, cs float64
	for _, v := range x {
		f := float64(v)
		sq += f * f
		cs += math.Cos(2 * math.Pi * f)
	}

	return float32(-20*math.Exp(-0.2*math.Sqrt(sq/n)) - math.Exp(cs/n) + 20 + math.E)
}
