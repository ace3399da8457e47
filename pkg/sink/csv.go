// Package sink writes corrected transects out as delimited text, GeoJSON,
// or a standalone HTML chart.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"sensoff/pkg/transect"
)

// Result pairs the original GPS fixes with the corrected sensor positions.
// Both sequences have the same length and index correspondence.
type Result struct {
	GPS    orb.LineString
	Sensor orb.LineString
}

// NewResult validates the two tracks line up.
func NewResult(gps, sensor orb.LineString) (Result, error) {
	if len(gps) != len(sensor) {
		return Result{}, transect.ErrShapeMismatch
	}
	return Result{GPS: gps, Sensor: sensor}, nil
}

// WriteCSV writes rows of xgps, ygps, xsens, ysens with a header row,
// matching the layout downstream survey tooling expects.
func WriteCSV(w io.Writer, res Result, delimiter rune) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}

	if err := cw.Write([]string{"xgps", "ygps", "xsens", "ysens"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range res.GPS {
		row := []string{
			formatCoord(res.GPS[i].X()),
			formatCoord(res.GPS[i].Y()),
			formatCoord(res.Sensor[i].X()),
			formatCoord(res.Sensor[i].Y()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
