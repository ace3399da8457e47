package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/paulmach/orb"
)

// AutoHeader makes a CSV source detect header rows on its own: rows that
// fail numeric parsing are skipped as long as they appear before the first
// data row and within the first maxAutoHeaderRows rows of the file.
const AutoHeader = -1

const maxAutoHeaderRows = 5

// CSV reads transect points from delimited text. Columns are 1-based.
type CSV struct {
	Path      string    // file to open; ignored when Reader is set
	Reader    io.Reader // alternative to Path, e.g. stdin
	XCol      int       // 1-based x column; 0 means column 1
	YCol      int       // 1-based y column; 0 means column 2
	Delimiter rune      // field delimiter; 0 means comma
	HeadRows  int       // rows to skip, or AutoHeader
}

// Points reads the whole file and returns the point sequence. A row that
// cannot be parsed is an error, never silently dropped, except for rows
// covered by the AutoHeader rule.
func (c CSV) Points() (orb.LineString, error) {
	r := c.Reader
	if r == nil {
		f, err := os.Open(c.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open point file: %w", err)
		}
		defer f.Close()
		r = f
	}

	xcol, ycol := c.XCol, c.YCol
	if xcol == 0 {
		xcol = 1
	}
	if ycol == 0 {
		ycol = 2
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if c.Delimiter != 0 {
		reader.Comma = c.Delimiter
	}

	var points orb.LineString
	rowNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum+1, err)
		}
		rowNum++

		if c.HeadRows >= 0 && rowNum <= c.HeadRows {
			continue
		}

		p, err := parseRow(record, xcol, ycol)
		if err != nil {
			// In auto mode, leading unparsable rows are treated as an
			// unannounced header.
			if c.HeadRows == AutoHeader && len(points) == 0 && rowNum <= maxAutoHeaderRows {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func parseRow(record []string, xcol, ycol int) (orb.Point, error) {
	if len(record) < xcol || len(record) < ycol {
		return orb.Point{}, fmt.Errorf("expected at least %d fields, got %d", max(xcol, ycol), len(record))
	}
	x, err := strconv.ParseFloat(record[xcol-1], 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("bad x value %q: %w", record[xcol-1], err)
	}
	y, err := strconv.ParseFloat(record[ycol-1], 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("bad y value %q: %w", record[ycol-1], err)
	}
	return orb.Point{x, y}, nil
}
