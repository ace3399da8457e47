// Command transect-report summarises a sensoff run log as an HTML page:
// one bar per recorded correction run, sized by point count, with the
// number of undefined headings alongside.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sensoff/pkg/runlog"
)

func main() {
	dbPath := flag.String("db", "./data/sensoff.db", "Path to the run-log database")
	outPath := flag.String("out", "transect-report.html", "Path to the output HTML report")
	limit := flag.Int("limit", 20, "Number of recent runs to include")
	flag.Parse()

	if err := run(*dbPath, *outPath, *limit); err != nil {
		log.Fatal(err)
	}
}

func run(dbPath, outPath string, limit int) error {
	db, err := runlog.Init(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.Recent(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return fmt.Errorf("no runs recorded in %s", dbPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	if err := render(f, runs); err != nil {
		return err
	}
	fmt.Printf("wrote report for %d runs to %s\n", len(runs), outPath)
	return nil
}

func render(w io.Writer, runs []runlog.Run) error {
	labels := make([]string, 0, len(runs))
	points := make([]opts.BarData, 0, len(runs))
	undefined := make([]opts.BarData, 0, len(runs))
	for _, r := range runs {
		labels = append(labels, fmt.Sprintf("%s (%s)", r.Source, r.CreatedAt.Format("01-02 15:04")))
		points = append(points, opts.BarData{Value: r.Points})
		undefined = append(undefined, opts.BarData{Value: r.Undefined})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Transect correction runs",
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Transect correction runs",
			Subtitle: "points per run and headings left undefined",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("points", points).
		AddSeries("undefined headings", undefined)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
