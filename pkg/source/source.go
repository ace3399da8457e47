// Package source provides adapters that deliver ordered transect point
// sequences from the places survey data actually lives: delimited text
// files, shapefiles, GeoJSON, raw NMEA receiver logs, or memory.
package source

import "github.com/paulmach/orb"

// Source produces the ordered (x, y) points of one transect, in traversal
// order. Column selection, delimiters and type coercion are the adapter's
// concern; the correction core never sees the underlying format.
type Source interface {
	Points() (orb.LineString, error)
}

// Slice is an in-memory Source for library callers and tests.
type Slice orb.LineString

// Points returns a copy of the slice so downstream stages cannot alias the
// caller's backing array.
func (s Slice) Points() (orb.LineString, error) {
	out := make(orb.LineString, len(s))
	copy(out, s)
	return out, nil
}
