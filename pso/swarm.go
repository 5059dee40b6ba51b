// SPDX-License-Identifier: MIT

package pso

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Particle is one member of a swarm.
type Particle struct {
	X       []float32 // current position
	V       []float32 // current velocity
	PBest   []float32 // best position visited
	Fitness float32   // objective value at PBest
	G       int       // index of the swarm-best particle, refreshed every iteration
}

// Dim returns the particle's dimension.
func (p *Particle) Dim() int { return len(p.X) }

// String renders the particle the way the CLI prints it.
func (p *Particle) String() string {
	var sb strings.Builder
	sb.WriteString("x: ")
	writeVec(&sb, p.X)
	sb.WriteString("\nv: ")
	writeVec(&sb, p.V)
	sb.WriteString("\npbest: ")
	writeVec(&sb, p.PBest)
	fmt.Fprintf(&sb, "\nfitness: %f\ng: %d\n", p.Fitness, p.G)

	return sb.String()
}

func writeVec(sb *strings.Builder, v []float32) {
	for i, e := range v {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(sb, "%.2f", e)
	}
}

// Swarm is an ordered collection of particles sharing bounds and objective.
// Invariant: after NewSwarm and after every completed iteration, every
// particle's G holds the index of the particle with the lowest Fitness.
type Swarm struct {
	Particles []Particle
	Dim       int
	XMin      float32
	XMax      float32
	Objective Objective
}

// NewSwarm creates size particles of dimension dim with positions uniform in
// [xmin, xmax), velocities uniform in ±|xmax−xmin|, pbest equal to the start
// position and G set to the best particle. A nil rng uses the default seed.
//
// Errors: ErrInvalidSwarm; the returned swarm is nil in that case.
func NewSwarm(obj Objective, dim, size int, xmin, xmax float32, rng *rand.Rand) (*Swarm, error) {
	switch {
	case obj == nil:
		return nil, fmt.Errorf("nil objective: %w", ErrInvalidSwarm)
	case dim <= 0:
		return nil, fmt.Errorf("dim=%d: %w", dim, ErrInvalidSwarm)
	case size <= 0:
		return nil, fmt.Errorf("size=%d: %w", size, ErrInvalidSwarm)
	case !finite(xmin) || !finite(xmax):
		return nil, fmt.Errorf("bounds [%g, %g] not finite: %w", xmin, xmax, ErrInvalidSwarm)
	case xmin >= xmax:
		return nil, fmt.Errorf("bounds [%g, %g] empty: %w", xmin, xmax, ErrInvalidSwarm)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	s := &Swarm{
		Particles: make([]Particle, size),
		Dim:       dim,
		XMin:      xmin,
		XMax:      xmax,
		Objective: obj,
	}
	span := s.span()
	// X, V and PBest of all particles live in three contiguous arrays.
	xs := make([]float32, size*dim)
	vs := make([]float32, size*dim)
	ps := make([]float32, size*dim)
	for i := range s.Particles {
		p := &s.Particles[i]
		p.X = xs[i*dim : (i+1)*dim : (i+1)*dim]
		p.V = vs[i*dim : (i+1)*dim : (i+1)*dim]
		p.PBest = ps[i*dim : (i+1)*dim : (i+1)*dim]
		for j := 0; j < dim; j++ {
			p.X[j] = uniform(rng, xmin, xmax)
			p.V[j] = uniform(rng, -span, span)
		}
		copy(p.PBest, p.X)
		p.Fitness = obj(p.X)
	}
	s.broadcast(s.Best())

	return s, nil
}

// Len returns the number of particles.
func (s *Swarm) Len() int { return len(s.Particles) }

// Best returns the index of the particle with the lowest Fitness (lowest
// index on ties) by a full scan, or NoParticle for an empty swarm.
func (s *Swarm) Best() int {
	if s == nil || len(s.Particles) == 0 {
		return NoParticle
	}
	g := 0
	for i := 1; i < len(s.Particles); i++ {
		if s.Particles[i].Fitness < s.Particles[g].Fitness {
			g = i
		}
	}

	return g
}

// Clone returns a deep copy of the swarm.
func (s *Swarm) Clone() *Swarm {
	c := &Swarm{
		Particles: make([]Particle, len(s.Particles)),
		Dim:       s.Dim,
		XMin:      s.XMin,
		XMax:      s.XMax,
		Objective: s.Objective,
	}
	for i, p := range s.Particles {
		c.Particles[i] = Particle{
			X:       append([]float32(nil), p.X...),
			V:       append([]float32(nil), p.V...),
			PBest:   append([]float32(nil), p.PBest...),
			Fitness: p.Fitness,
			G:       p.G,
		}
	}

	return c
}

// span is |xmax − xmin|, the velocity bound.
func (s *Swarm) span() float32 {
	return float32(math.Abs(float64(s.XMax) - float64(s.XMin)))
}

func (s *Swarm) broadcast(g int) {
	for i := range s.Particles {
		s.Particles[i].G = g
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
