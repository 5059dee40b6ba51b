// SPDX-License-Identifier: MIT

package trace

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default chart dimensions.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Chart describes the axes and labels of a rendered trace.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	// LogY selects a logarithmic y axis; non-positive samples are dropped.
	// A series whose values are all equal is drawn on a linear axis.
	LogY bool
	// Width and Height default to DefaultWidth and DefaultHeight when zero.
	Width, Height vg.Length
}

var formats = map[string]struct{}{"png": {}, "svg": {}, "pdf": {}}

// Render draws every series as one line and writes the chart to w in the
// given format ("png", "svg" or "pdf").
//
// Errors: ErrUnsupportedFormat, ErrEmptySeries, or a wrapped plot error.
func Render(w io.Writer, format string, chart Chart, series ...*Recorder) error {
	format = strings.ToLower(format)
	if _, ok := formats[format]; !ok {
		return fmt.Errorf("trace: %q: %w", format, ErrUnsupportedFormat)
	}

	p, err := build(chart, series)
	if err != nil {
		return err
	}

	width, height := chart.Width, chart.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("trace: render: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("trace: write: %w", err)
	}

	return nil
}

// Save renders the chart into path, taking the format from its extension.
func Save(path string, chart Chart, series ...*Recorder) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if _, ok := formats[strings.ToLower(format)]; !ok {
		return fmt.Errorf("trace: %q: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return Render(f, format, chart, series...)
}

// build assembles the plot; it fails when no series has a drawable point.
func build(chart Chart, series []*Recorder) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	p.Add(plotter.NewGrid())

	var (
		drawn      int
		minY, maxY = math.Inf(1), math.Inf(-1)
	)
	for i, rec := range series {
		if rec == nil {
			continue
		}
		pts := points(rec, chart.LogY)
		if len(pts) == 0 {
			continue
		}
		for _, pt := range pts {
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("trace: series %q: %w", rec.Name(), err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		if rec.Name() != "" {
			p.Legend.Add(rec.Name(), line)
		}
		drawn++
	}
	if drawn == 0 {
		return nil, ErrEmptySeries
	}
	// A flat range is widened by ±1, which a log axis cannot represent.
	if chart.LogY && minY < maxY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	return p, nil
}

func points(rec *Recorder, logY bool) plotter.XYs {
	pts := make(plotter.XYs, 0, rec.Len())
	for _, s := range rec.samples {
		if logY && !(s.Value > 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(s.Iteration), Y: s.Value})
	}

	return pts
}
