// SPDX-License-Identifier: MIT

package pso

// SolveSequential is the single-goroutine reference solver. It walks the
// swarm in index order with one random stream, finds the best particle with a
// full scan and broadcasts it serially. Particle moves use the same kernel as
// the parallel solver, so SolveSequential(s, opts) and Solve(s, opts) with
// opts.Workers == 1 leave identical swarms.
func SolveSequential(s *Swarm, opts Options) (int, error) {
	if err := validate(s, opts); err != nil {
		return NoParticle, err
	}

	r := streams(opts.Seed, 1)[0]
	span := s.span()
	g := s.Best()
	gx := append([]float32(nil), s.Particles[g].X...)

	for it := 1; it <= opts.MaxIterations; it++ {
		for i := range s.Particles {
			s.move(&s.Particles[i], r, gx, span)
		}
		g = s.Best()
		s.broadcast(g)
		copy(gx, s.Particles[g].X)

		if opts.Progress != nil {
			opts.Progress(it, g, s.Particles[g].Fitness)
		}
	}

	return g, nil
}
