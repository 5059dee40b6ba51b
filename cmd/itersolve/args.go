// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// errInvalidArgument marks a malformed or out-of-range positional argument.
var errInvalidArgument = errors.New("invalid argument")

// parseCount parses a positional integer that must be at least lo.
func parseCount(name, s string, lo int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, errInvalidArgument)
	}
	if v < lo {
		return 0, fmt.Errorf("%s=%d must be >= %d: %w", name, v, lo, errInvalidArgument)
	}

	return v, nil
}

// parseBound parses a finite float32 bound.
func parseBound(name, s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: %w", name, s, errInvalidArgument)
	}

	return float32(v), nil
}

// speedup is sequential/parallel, 0 when the parallel time is not measurable.
func speedup(seq, par float64) float64 {
	if par <= 0 {
		return 0
	}

	return seq / par
}
