package source

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// Shapefile reads transect points from an ESRI shapefile. Point shapes are
// taken in record order; polyline shapes contribute their vertices in part
// order, which matches how survey lines are digitized.
type Shapefile struct {
	Path string
}

// Points opens the shapefile and collects every coordinate in record order.
func (s Shapefile) Points() (orb.LineString, error) {
	shape, err := shp.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shapefile: %w", err)
	}
	defer shape.Close()

	var points orb.LineString
	for shape.Next() {
		_, p := shape.Shape()

		switch g := p.(type) {
		case *shp.Null:
			continue
		case *shp.Point:
			points = append(points, orb.Point{g.X, g.Y})
		case *shp.PointM:
			points = append(points, orb.Point{g.X, g.Y})
		case *shp.PointZ:
			points = append(points, orb.Point{g.X, g.Y})
		case *shp.PolyLine:
			for _, v := range g.Points {
				points = append(points, orb.Point{v.X, v.Y})
			}
		default:
			return nil, fmt.Errorf("unsupported shape type %T", p)
		}
	}
	if err := shape.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shapes: %w", err)
	}
	return points, nil
}
