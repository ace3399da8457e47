package transect

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// EdgeMode selects the heading convention at the first and last point of a
// transect, where only one adjacent leg exists. The two historical
// conventions disagree, so the choice is explicit.
type EdgeMode int

const (
	// EdgeNaN leaves the first and last heading undefined.
	EdgeNaN EdgeMode = iota

	// EdgeLeg assigns the single adjacent leg's raw angle.
	EdgeLeg
)

// oppositeTol is the relative tolerance used to decide that two leg angles
// point in exactly opposite directions (angular gap of pi), in which case
// no bisecting heading exists. Chosen to match the 1e-9 relative tolerance
// the original survey scripts used for this comparison.
const oppositeTol = 1e-9

// Headings estimates the platform heading at every point of a transect.
//
// The heading at an interior point is a weighted circular average of the
// two adjacent leg angles. Each leg angle is weighted by the length of the
// *other* leg: a very short adjacent leg carries a noisy angle, so the
// average is pulled toward the longer, more trustworthy leg instead.
//
// Undefined cases are returned as NaN, never as an error: zero-length legs
// (duplicate consecutive fixes), legs pointing in exactly opposite
// directions, and edge points under EdgeNaN. A single-point transect has
// one NaN heading. The result always has len(points) entries.
func Headings(points orb.LineString, mode EdgeMode) []float64 {
	n := len(points)
	headings := make([]float64, 0, n)
	if n == 0 {
		return headings
	}
	if n == 1 {
		return append(headings, math.NaN())
	}

	angles := make([]float64, n-1)
	lengths := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		angles[i] = legAngle(points[i], points[i+1])
		lengths[i] = planar.Distance(points[i], points[i+1])
	}

	switch mode {
	case EdgeLeg:
		headings = append(headings, angles[0])
	default:
		headings = append(headings, math.NaN())
	}

	for i := 1; i < n-1; i++ {
		headings = append(headings, averageLegs(angles[i-1], lengths[i-1], angles[i], lengths[i]))
	}

	switch mode {
	case EdgeLeg:
		headings = append(headings, angles[n-2])
	default:
		headings = append(headings, math.NaN())
	}
	return headings
}

// legAngle returns the standard position angle of the leg from a to b, or
// NaN for a zero-length leg, whose direction is undefined.
func legAngle(a, b orb.Point) float64 {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	if dx == 0 && dy == 0 {
		return math.NaN()
	}
	return math.Atan2(dy, dx)
}

// averageLegs computes the weighted circular average of the incoming leg
// angle a0 (length d0) and outgoing leg angle a1 (length d1) at an interior
// point. The incoming angle is weighted by the outgoing leg's length and
// vice versa.
func averageLegs(a0, d0, a1, d1 float64) float64 {
	if math.IsNaN(a0) || math.IsNaN(a1) {
		return math.NaN()
	}

	// Pair each angle with the other leg's length, then order by angle so
	// the wraparound logic below only has to consider lo <= hi.
	lo, loW := a0, d1
	hi, hiW := a1, d0
	if lo > hi {
		lo, hi = hi, lo
		loW, hiW = hiW, loW
	}

	gap := hi - lo
	if isClose(gap, math.Pi) {
		// Legs point in exactly opposite directions; there is no
		// bisecting heading.
		return math.NaN()
	}
	if gap > math.Pi {
		// Average across the -pi/pi seam the short way around.
		lo += 2 * math.Pi
	}
	avg := (loW*lo + hiW*hi) / (loW + hiW)
	if avg > math.Pi {
		avg -= 2 * math.Pi
	}
	return avg
}

// isClose reports whether a and b are equal within oppositeTol relative
// tolerance.
func isClose(a, b float64) bool {
	return math.Abs(a-b) <= oppositeTol*math.Max(math.Abs(a), math.Abs(b))
}
