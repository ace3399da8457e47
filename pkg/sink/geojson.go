package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// WriteGeoJSON writes the GPS track and the corrected sensor track as two
// LineString features in one FeatureCollection. Sensor points with
// undefined coordinates are omitted from the sensor line (JSON has no NaN),
// and their indexes are recorded in the feature's "undefined_indexes"
// property so nothing is lost silently.
func WriteGeoJSON(w io.Writer, res Result) error {
	fc := geojson.NewFeatureCollection()

	gps := geojson.NewFeature(res.GPS.Clone())
	gps.Properties["track"] = "gps"
	fc.Append(gps)

	var sensorLine orb.LineString
	var undefined []int
	for i, p := range res.Sensor {
		if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
			undefined = append(undefined, i)
			continue
		}
		sensorLine = append(sensorLine, p)
	}

	sensor := geojson.NewFeature(sensorLine)
	sensor.Properties["track"] = "sensor"
	if len(undefined) > 0 {
		sensor.Properties["undefined_indexes"] = undefined
	}
	fc.Append(sensor)

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write GeoJSON: %w", err)
	}
	return nil
}
