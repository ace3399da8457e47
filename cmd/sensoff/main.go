// Command sensoff corrects GPS transect coordinates for a sensor mounted
// at a fixed offset from the GPS antenna.
//
// Schematic of the offset convention (plan view, platform moving right):
//
//	         lateral (+)
//	              |        direction of travel -->
//	    (-) --- GPS ---> (+) inline
//	              |
//	         lateral (-)
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"sensoff/pkg/config"
	"sensoff/pkg/logging"
	"sensoff/pkg/runlog"
	"sensoff/pkg/sink"
	"sensoff/pkg/source"
	"sensoff/pkg/transect"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file (optional)")
		ioff       = flag.Float64("ioff", 0, "Inline sensor offset, positive in direction of travel")
		loff       = flag.Float64("loff", 0, "Lateral sensor offset, positive to left (facing forward)")
		format     = flag.String("format", "", "Input format: csv, shapefile, geojson or nmea (default csv)")
		xcol       = flag.Int("xcol", 0, "1-based x-coordinate column (csv)")
		ycol       = flag.Int("ycol", 0, "1-based y-coordinate column (csv)")
		headrows   = flag.Int("headrows", source.AutoHeader, "Number of header rows to skip (csv); -1 auto-detects")
		delimiter  = flag.String("delimiter", "", "Input field delimiter (csv)")
		edge       = flag.String("edge", "", "Edge-heading convention: nan or leg")
		outfile    = flag.String("outfile", "", "Write corrected CSV to file instead of stdout")
		geojsonOut = flag.String("geojson", "", "Also write both tracks as GeoJSON to this path")
		chartOut   = flag.String("chart", "", "Also write an HTML chart of both tracks to this path")
		runlogPath = flag.String("runlog", "", "Record this run in the given sqlite run log")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatal("exactly one input file is required ('-' for stdin)")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Flags set on the command line win over the config file.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["ioff"] {
		cfg.Offset.Inline = *ioff
	}
	if set["loff"] {
		cfg.Offset.Lateral = *loff
	}
	if set["format"] {
		cfg.Input.Format = *format
	}
	if set["xcol"] {
		cfg.Input.XCol = *xcol
	}
	if set["ycol"] {
		cfg.Input.YCol = *ycol
	}
	if set["headrows"] {
		cfg.Input.HeadRows = *headrows
	}
	if set["delimiter"] {
		cfg.Input.Delimiter = *delimiter
	}
	if set["edge"] {
		cfg.Output.Edge = *edge
	}
	if set["runlog"] {
		cfg.RunLog.Enabled = true
		cfg.RunLog.Path = *runlogPath
	}

	cleanup, err := logging.Init(&cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := run(cfg, flag.Arg(0), *outfile, *geojsonOut, *chartOut); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

func run(cfg *config.Config, input, outfile, geojsonOut, chartOut string) error {
	mode, err := cfg.EdgeMode()
	if err != nil {
		return err
	}

	src, err := buildSource(cfg, input)
	if err != nil {
		return err
	}
	points, err := src.Points()
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return transect.ErrEmptyInput
	}

	off := transect.Offset{Inline: cfg.Offset.Inline, Lateral: cfg.Offset.Lateral}
	headings := transect.Headings(points, mode)
	corrected, err := transect.Project(points, headings, off)
	if err != nil {
		return err
	}

	undefined := 0
	for _, h := range headings {
		if math.IsNaN(h) {
			undefined++
		}
	}
	slog.Info("transect corrected",
		"source", input,
		"points", len(points),
		"undefined_headings", undefined,
		"inline", off.Inline,
		"lateral", off.Lateral,
		"edge", cfg.Output.Edge,
	)

	res, err := sink.NewResult(points, corrected)
	if err != nil {
		return err
	}
	if err := writeOutputs(cfg, res, outfile, geojsonOut, chartOut); err != nil {
		return err
	}

	if cfg.RunLog.Enabled {
		if err := recordRun(cfg, input, len(points), undefined); err != nil {
			// History is best effort; the correction output already exists.
			slog.Warn("failed to record run", "error", err)
		}
	}
	return nil
}

func buildSource(cfg *config.Config, input string) (source.Source, error) {
	var reader io.Reader
	path := input
	if input == "-" {
		reader = os.Stdin
		path = ""
	}

	switch cfg.Input.Format {
	case "", "csv":
		return source.CSV{
			Path:      path,
			Reader:    reader,
			XCol:      cfg.Input.XCol,
			YCol:      cfg.Input.YCol,
			Delimiter: cfg.InputDelimiter(),
			HeadRows:  cfg.Input.HeadRows,
		}, nil
	case "shapefile":
		if reader != nil {
			return nil, fmt.Errorf("shapefile input cannot be read from stdin")
		}
		return source.Shapefile{Path: path}, nil
	case "geojson":
		return source.GeoJSON{Path: path, Reader: reader}, nil
	case "nmea":
		return source.NMEA{Path: path, Reader: reader}, nil
	default:
		return nil, fmt.Errorf("unknown input format %q", cfg.Input.Format)
	}
}

func writeOutputs(cfg *config.Config, res sink.Result, outfile, geojsonOut, chartOut string) error {
	var w io.Writer = os.Stdout
	if outfile != "" {
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := sink.WriteCSV(w, res, cfg.OutputDelimiter()); err != nil {
		return err
	}

	if geojsonOut != "" {
		if err := writeFile(geojsonOut, func(f io.Writer) error {
			return sink.WriteGeoJSON(f, res)
		}); err != nil {
			return err
		}
	}
	if chartOut != "" {
		title := fmt.Sprintf("inline=%g lateral=%g", cfg.Offset.Inline, cfg.Offset.Lateral)
		if err := writeFile(chartOut, func(f io.Writer) error {
			return sink.WriteChart(f, res, title)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}

func recordRun(cfg *config.Config, input string, points, undefined int) error {
	db, err := runlog.Init(cfg.RunLog.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	format := cfg.Input.Format
	if format == "" {
		format = "csv"
	}
	id, err := db.Record(runlog.Run{
		Source:    input,
		Format:    format,
		Inline:    cfg.Offset.Inline,
		Lateral:   cfg.Offset.Lateral,
		Edge:      cfg.Output.Edge,
		Points:    points,
		Undefined: undefined,
	})
	if err != nil {
		return err
	}
	slog.Debug("run recorded", "id", id, "db", cfg.RunLog.Path)
	return nil
}
