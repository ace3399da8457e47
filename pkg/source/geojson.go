package source

import (
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON reads transect points from a GeoJSON FeatureCollection. A
// LineString feature contributes its vertices in order; Point features
// contribute one point each, in feature order.
type GeoJSON struct {
	Path   string
	Reader io.Reader // alternative to Path
}

// Points parses the collection and flattens it into a point sequence.
func (g GeoJSON) Points() (orb.LineString, error) {
	var data []byte
	var err error
	if g.Reader != nil {
		data, err = io.ReadAll(g.Reader)
	} else {
		data, err = os.ReadFile(g.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read geojson: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geojson: %w", err)
	}

	var points orb.LineString
	for i, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.Point:
			points = append(points, geom)
		case orb.LineString:
			points = append(points, geom...)
		default:
			return nil, fmt.Errorf("feature %d: unsupported geometry %T", i, geom)
		}
	}
	return points, nil
}
