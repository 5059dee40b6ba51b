// SPDX-License-Identifier: MIT

package trace

import "errors"

var (
	// ErrEmptySeries indicates there is nothing to draw (no series, or every
	// sample was dropped).
	ErrEmptySeries = errors.New("trace: empty series")

	// ErrUnsupportedFormat indicates an output format other than png, svg or pdf.
	ErrUnsupportedFormat = errors.New("trace: unsupported format")
)
