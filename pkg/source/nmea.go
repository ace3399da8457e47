package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
	"github.com/paulmach/orb"
)

// NMEA reads transect points from a raw receiver log, one sentence per
// line. Each valid RMC fix becomes one point with x = longitude and
// y = latitude, in decimal degrees.
type NMEA struct {
	Path   string
	Reader io.Reader // alternative to Path
}

// Points scans the log for RMC sentences. Receiver logs routinely contain
// truncated or garbled sentences, so lines that do not parse are skipped;
// fixes flagged void by the receiver are skipped as well.
func (n NMEA) Points() (orb.LineString, error) {
	r := n.Reader
	if r == nil {
		f, err := os.Open(n.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open nmea log: %w", err)
		}
		defer f.Close()
		r = f
	}

	var points orb.LineString
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "$") {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			continue
		}
		if sentence.DataType() != nmea.TypeRMC {
			continue
		}

		m := sentence.(nmea.RMC)
		if m.Validity != nmea.ValidRMC {
			continue
		}
		points = append(points, orb.Point{m.Longitude, m.Latitude})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan nmea log: %w", err)
	}
	return points, nil
}
