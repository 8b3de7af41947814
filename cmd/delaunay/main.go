package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/export"
	"github.com/osuushi/delaunay/internal/logger"
	"github.com/osuushi/delaunay/pointsource"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a point set and write the mesh out. Input is either
// newline separated points in the form "x y", or an SVG document whose circle
// centres and polygon vertices are the points. Every flag can also be set with
// a DELAUNAY_* environment variable.
func main() {
	cli := newCLI()
	cfg := cli.config
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, aurora.NewAurora(*cfg.color).Red(err.Error()))
		os.Exit(1)
	}
}

type config struct {
	input       *string
	inputFormat *string
	format      *string
	output      *string
	title       *string
	shuffle     *bool
	seed        *int64
	validate    *bool
	scale       *float64
	imgcat      *bool
	logLevel    *string
	color       *bool
}

type cli struct {
	*kingpin.Application
	config *config
}

func newCLI() *cli {
	a := kingpin.New("delaunay", "Incremental Delaunay triangulation of a 2D point set.")
	a.Version("0.1.0")
	cfg := &config{
		input: a.Arg("input", "Point file to read. Reads stdin when omitted or \"-\".").
			Default("-").String(),
		inputFormat: a.Flag("input-format", "Input format: text or svg. Guessed from the file extension by default.").
			Short('i').Envar("DELAUNAY_INPUT_FORMAT").Enum("text", "svg"),
		format: a.Flag("format", "Output format.").
			Short('f').Envar("DELAUNAY_FORMAT").Default(export.Gnuplot.String()).Enum(export.FormatNames()...),
		output: a.Flag("output", "File to write. Writes stdout when \"-\".").
			Short('o').Envar("DELAUNAY_OUTPUT").Default("-").String(),
		title: a.Flag("title", "Title for the gnuplot and html outputs.").
			Envar("DELAUNAY_TITLE").Default("").String(),
		shuffle: a.Flag("shuffle", "Insert points in a random order.").
			Envar("DELAUNAY_SHUFFLE").Bool(),
		seed: a.Flag("seed", "Seed for --shuffle. Defaults to the current time.").
			Envar("DELAUNAY_SEED").Default("0").Int64(),
		validate: a.Flag("validate", "Check every mesh invariant after each insertion (slow).").
			Envar("DELAUNAY_VALIDATE").Bool(),
		scale: a.Flag("scale", "Pixels per unit for png output.").
			Envar("DELAUNAY_SCALE").Default("50").Float64(),
		imgcat: a.Flag("imgcat", "Also print the mesh as an image in the terminal (iTerm only).").
			Envar("DELAUNAY_IMGCAT").Bool(),
		logLevel: a.Flag("log-level", "Log level: debug, info, warn or error.").
			Envar("DELAUNAY_LOG_LEVEL").Default("warn").String(),
		color: a.Flag("color", "Colour the log and summary on stderr.").
			Envar("DELAUNAY_COLOR").Default("true").Bool(),
	}
	return &cli{Application: a, config: cfg}
}

func run(cfg *config, stdin io.Reader, stdout, stderr io.Writer) error {
	au := aurora.NewAurora(*cfg.color)

	level, err := logger.ParseLevel(*cfg.logLevel)
	if err != nil {
		return errors.Wrap(err, "--log-level")
	}
	log := logger.New(stderr, level, *cfg.color)
	defer log.Sync()

	points, err := readPoints(cfg, stdin)
	if err != nil {
		return err
	}
	log.Debug("read points", zap.Int("count", len(points)), zap.String("input", *cfg.input))

	opts := []delaunay.Option{delaunay.WithLogger(log)}
	if *cfg.shuffle {
		seed := *cfg.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Debug("shuffling input", zap.Int64("seed", seed))
		opts = append(opts, delaunay.WithShuffle(seed))
	}
	if *cfg.validate {
		opts = append(opts, delaunay.WithValidation())
	}

	start := time.Now()
	mesh, err := delaunay.Triangulate(points, opts...)
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}
	elapsed := time.Since(start)

	if err := writeMesh(cfg, mesh, stdout); err != nil {
		return err
	}

	if *cfg.imgcat {
		if err := catMesh(mesh, *cfg.scale, stderr); err != nil {
			log.Warn("could not print image", zap.Error(err))
		}
	}

	fmt.Fprintf(stderr, "%s %d points into %d triangles in %s (%d flips, %d duplicates skipped)\n",
		au.Green("Triangulated"),
		au.Bold(len(mesh.Vertices)),
		au.Bold(len(mesh.Triangles)),
		au.Cyan(elapsed.Round(time.Microsecond)),
		mesh.Stats.Flips,
		mesh.Stats.Duplicates,
	)
	return nil
}

func readPoints(cfg *config, stdin io.Reader) ([]delaunay.Point, error) {
	in := stdin
	if *cfg.input != "-" {
		file, err := os.Open(*cfg.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
	}

	format := *cfg.inputFormat
	if format == "" {
		format = "text"
		if filepath.Ext(*cfg.input) == ".svg" {
			format = "svg"
		}
	}

	var points []delaunay.Point
	var err error
	if format == "svg" {
		points, err = pointsource.ReadSVG(in)
	} else {
		points, err = pointsource.ReadText(in)
	}
	return points, errors.Wrapf(err, "reading %s", *cfg.input)
}

func writeMesh(cfg *config, mesh *delaunay.Mesh, stdout io.Writer) error {
	format, err := export.ParseFormat(*cfg.format)
	if err != nil {
		return err
	}

	out := stdout
	if *cfg.output != "-" {
		file, err := os.Create(*cfg.output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer file.Close()
		out = file
	}

	return export.Write(out, format, mesh, export.Options{
		Scale: *cfg.scale,
		Title: *cfg.title,
	})
}

func catMesh(mesh *delaunay.Mesh, scale float64, w io.Writer) error {
	file, err := os.CreateTemp("", "delaunay-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(file.Name())
	defer file.Close()

	if err := export.WritePNG(file, mesh, scale); err != nil {
		return err
	}
	return imgcat.CatFile(file.Name(), w)
}
