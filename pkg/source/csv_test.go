package source

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const surveyCSV = `POINT_X,POINT_Y
470533.3466,3759298.5405
470533.4242,3759298.5348
470533.4641,3759298.5622
`

func TestCSVAutoHeader(t *testing.T) {
	src := CSV{Reader: strings.NewReader(surveyCSV), HeadRows: AutoHeader}
	points, err := src.Points()
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, orb.Point{470533.3466, 3759298.5405}, points[0])
	assert.Equal(t, orb.Point{470533.4641, 3759298.5622}, points[2])
}

func TestCSVExplicitHeadRows(t *testing.T) {
	src := CSV{Reader: strings.NewReader(surveyCSV), HeadRows: 1}
	points, err := src.Points()
	require.NoError(t, err)
	assert.Len(t, points, 3)
}

func TestCSVColumnSelection(t *testing.T) {
	data := "id x y\nnote\n1 10.5 20.5\n2 11.5 21.5\n"
	src := CSV{
		Reader:    strings.NewReader(data),
		Delimiter: ' ',
		XCol:      2,
		YCol:      3,
		HeadRows:  2,
	}
	points, err := src.Points()
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, orb.Point{10.5, 20.5}, points[0])
	assert.Equal(t, orb.Point{11.5, 21.5}, points[1])
}

func TestCSVMalformedRowIsError(t *testing.T) {
	// A bad row after data has started must fail loudly, not be dropped.
	data := "1.0,2.0\n3.0,oops\n"
	src := CSV{Reader: strings.NewReader(data), HeadRows: AutoHeader}
	_, err := src.Points()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestCSVAutoHeaderGivesUpAfterFiveRows(t *testing.T) {
	data := "a\nb\nc\nd\ne\nf\n1.0,2.0\n"
	src := CSV{Reader: strings.NewReader(data), HeadRows: AutoHeader}
	_, err := src.Points()
	assert.Error(t, err)
}

func TestCSVShortRow(t *testing.T) {
	src := CSV{Reader: strings.NewReader("1.0\n"), HeadRows: 0}
	_, err := src.Points()
	assert.Error(t, err)
}

func TestCSVEmptyFile(t *testing.T) {
	src := CSV{Reader: strings.NewReader(""), HeadRows: AutoHeader}
	points, err := src.Points()
	require.NoError(t, err)
	assert.Empty(t, points)
}
