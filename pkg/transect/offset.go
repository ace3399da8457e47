package transect

import (
	"math"

	"github.com/paulmach/orb"
)

// Project translates every GPS fix to the sensor's position using the
// platform heading estimated at that fix.
//
// The mounted offset is expressed once in platform-relative polar form
// (angle gamma off the forward axis, magnitude radius) and then rotated by
// each point's heading. A NaN heading yields a (NaN, NaN) point; callers
// decide whether to skip, interpolate, or report those. A zero offset
// returns the input points exactly, heading validity notwithstanding.
//
// Returns ErrShapeMismatch when headings does not line up with points.
func Project(points orb.LineString, headings []float64, off Offset) (orb.LineString, error) {
	if len(points) != len(headings) {
		return nil, ErrShapeMismatch
	}

	out := make(orb.LineString, 0, len(points))
	if off.Zero() {
		// No correction configured. Bypass the heading term entirely so
		// NaN headings cannot leak into the output.
		out = append(out, points...)
		return out, nil
	}

	gamma := math.Atan2(off.Lateral, off.Inline)
	radius := math.Hypot(off.Lateral, off.Inline)
	for i, p := range points {
		out = append(out, orb.Point{
			p.X() + radius*math.Cos(headings[i]+gamma),
			p.Y() + radius*math.Sin(headings[i]+gamma),
		})
	}
	return out, nil
}
