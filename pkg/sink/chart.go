package sink

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders a standalone HTML scatter chart of the GPS track
// against the corrected sensor track. Axis ranges are symmetric around the
// data so the two tracks keep their true aspect; sensor points with
// undefined coordinates are left out of the plot.
func WriteChart(w io.Writer, res Result, title string) error {
	gpsData := make([]opts.ScatterData, 0, len(res.GPS))
	sensorData := make([]opts.ScatterData, 0, len(res.Sensor))

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	track := func(x, y float64) {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for _, p := range res.GPS {
		track(p.X(), p.Y())
		gpsData = append(gpsData, opts.ScatterData{Value: []interface{}{p.X(), p.Y()}})
	}
	for _, p := range res.Sensor {
		if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
			continue
		}
		track(p.X(), p.Y())
		sensorData = append(sensorData, opts.ScatterData{Value: []interface{}{p.X(), p.Y()}})
	}

	// Pad the axis ranges slightly so edge points stay visible.
	padX := (maxX - minX) * 0.05
	padY := (maxY - minY) * 0.05
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Transect correction",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Transect correction",
			Subtitle: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minX - padX, Max: maxX + padX, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: minY - padY, Max: maxY + padY, Name: "y"}),
	)
	scatter.AddSeries("GPS", gpsData)
	scatter.AddSeries("Sensor", sensorData)

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
