// Package transect corrects GPS transect coordinates for a sensor that is
// mounted at a fixed offset from the GPS antenna on a mobile survey platform.
//
// The platform's heading at each recorded fix is estimated from the
// neighbouring fixes, and the mounted offset vector is rotated into world
// coordinates using that heading. All angles are standard position angles:
// zero along the positive x-axis, counter-clockwise positive, in (-pi, pi].
package transect

import (
	"errors"

	"github.com/paulmach/orb"
)

// Offset describes the sensor mount relative to the GPS antenna.
// Inline is positive in the direction of travel, Lateral is positive to
// the left when facing forward. Units follow the input coordinates.
type Offset struct {
	Inline  float64
	Lateral float64
}

// Zero reports whether the offset is exactly (0, 0), i.e. no correction.
func (o Offset) Zero() bool {
	return o.Inline == 0 && o.Lateral == 0
}

var (
	// ErrEmptyInput indicates the point source yielded no points.
	ErrEmptyInput = errors.New("transect: no input points")

	// ErrShapeMismatch indicates the heading sequence does not line up
	// with the point sequence. This is a pipeline wiring bug, not bad
	// user input.
	ErrShapeMismatch = errors.New("transect: points and headings differ in length")
)

// Correct runs the full pipeline: estimate a heading for every point, then
// project the offset into world coordinates at each fix. The result has the
// same length and order as points. Points whose heading is undefined come
// back as (NaN, NaN) unless the offset is zero.
func Correct(points orb.LineString, off Offset, mode EdgeMode) (orb.LineString, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	headings := Headings(points, mode)
	return Project(points, headings, off)
}
