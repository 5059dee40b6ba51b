// SPDX-License-Identifier: MIT

package trace

// Sample is one recorded point.
type Sample struct {
	Iteration int
	Value     float64
}

// Recorder accumulates samples for one named series.
// It is not safe for concurrent use; solvers invoke Progress callbacks from
// the calling goroutine.
type Recorder struct {
	name    string
	samples []Sample
}

// NewRecorder returns an empty recorder labelled name in chart legends.
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

// Name returns the legend label.
func (r *Recorder) Name() string { return r.name }

// Add appends a sample.
func (r *Recorder) Add(iteration int, value float64) {
	r.samples = append(r.samples, Sample{Iteration: iteration, Value: value})
}

// Len returns the number of samples.
func (r *Recorder) Len() int { return len(r.samples) }

// Values returns the recorded values in insertion order.
func (r *Recorder) Values() []float64 {
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		out[i] = s.Value
	}

	return out
}

// Samples returns a copy of the recorded samples.
func (r *Recorder) Samples() []Sample {
	return append([]Sample(nil), r.samples...)
}

// Last returns the most recent sample, or false when nothing was recorded.
func (r *Recorder) Last() (Sample, bool) {
	if len(r.samples) == 0 {
		return Sample{}, false
	}

	return r.samples[len(r.samples)-1], true
}

// Reset drops all samples, keeping the name.
func (r *Recorder) Reset() { r.samples = r.samples[:0] }
