package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/svgeom"
	"github.com/tdewolff/svgeom/rasterizer"
)

type Flatten struct {
	Config      string  `short:"c" desc:"Configuration file (TOML)"`
	Format      string  `short:"f" default:"json" desc:"Output format: json, geojson or svg"`
	Fill        string  `desc:"Fill rule: nonzero, evenodd or none, defaults to the configured rule"`
	StrokeWidth float64 `desc:"Stroke width, zero disables stroking"`
	Cap         string  `default:"butt" desc:"Line cap: butt, round or square"`
	Join        string  `default:"miter" desc:"Line join: miter, round or bevel"`
	MiterLimit  float64 `default:"4" desc:"Miter limit"`
	Dash        string  `desc:"Dash array, eg. 4,2"`
	DashOffset  float64 `desc:"Dash offset"`
	Transform   string  `short:"t" desc:"SVG transform list"`
	Output      string  `short:"o" desc:"Output file"`
	Verbose     bool    `short:"v" desc:"Verbose logging"`
	Input       string  `index:"0" desc:"Path data, or - to read one path per line from stdin"`
}

type Preview struct {
	Config      string  `short:"c" desc:"Configuration file (TOML)"`
	Fill        string  `desc:"Fill rule: nonzero, evenodd or none, defaults to the configured rule"`
	StrokeWidth float64 `desc:"Stroke width, zero disables stroking"`
	Transform   string  `short:"t" desc:"SVG transform list"`
	Scale       float64 `short:"s" default:"1" desc:"Pixels per unit"`
	Output      string  `short:"o" default:"out.png" desc:"Output file"`
	Verbose     bool    `short:"v" desc:"Verbose logging"`
	Input       string  `index:"0" desc:"Path data, or - to read one path per line from stdin"`
}

func main() {
	root := argp.NewCmd(&Flatten{}, "Flatten SVG path data into polygons")
	root.AddCmd(&Preview{}, "preview", "Render flattened paths to a PNG image")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Flatten) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	session, err := cmd.process()
	if err != nil {
		return err
	}

	var write func(io.Writer, []*svgeom.Layer) error
	switch strings.ToLower(cmd.Format) {
	case "json":
		write = writeJSON
	case "geojson":
		write = writeGeoJSON
	case "svg":
		write = writeSVG
	default:
		return fmt.Errorf("unknown format %q", cmd.Format)
	}
	return cmd.output(func(w io.Writer) error {
		return write(w, session.Layers())
	})
}

func (cmd *Preview) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Output == "" || cmd.Output == "-" {
		return fmt.Errorf("preview needs an output file")
	} else if !(0.0 < cmd.Scale) {
		return fmt.Errorf("scale must be positive")
	}
	flatten := &Flatten{
		Config:      cmd.Config,
		Fill:        cmd.Fill,
		StrokeWidth: cmd.StrokeWidth,
		Cap:         "butt",
		Join:        "miter",
		MiterLimit:  svgeom.DefaultMiterLimit,
		Transform:   cmd.Transform,
		Output:      cmd.Output,
		Verbose:     cmd.Verbose,
		Input:       cmd.Input,
	}
	session, err := flatten.process()
	if err != nil {
		return err
	}
	return flatten.output(func(w io.Writer) error {
		return rasterizer.PNGWriter(cmd.Scale)(w, session.Layers())
	})
}

func (cmd *Flatten) output(write func(io.Writer) error) error {
	if cmd.Output == "" || cmd.Output == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *Flatten) config() (svgeom.Config, error) {
	cfg := svgeom.DefaultConfig()
	if cmd.Config != "" {
		var err error
		if cfg, err = svgeom.LoadConfig(cmd.Config); err != nil {
			return cfg, err
		}
	}
	return cfg.FromEnv()
}

func (cmd *Flatten) shapes() ([]svgeom.Shape, error) {
	m := svgeom.Identity
	if cmd.Transform != "" {
		var err error
		if m, err = svgeom.ParseTransform(cmd.Transform); err != nil {
			return nil, err
		}
	}

	var fill *svgeom.FillStyle
	if !strings.EqualFold(cmd.Fill, "none") {
		fill = &svgeom.FillStyle{}
		if cmd.Fill != "" {
			fill.Rule = new(svgeom.FillRule)
			if err := fill.Rule.UnmarshalText([]byte(cmd.Fill)); err != nil {
				return nil, err
			}
		}
	}

	var stroke *svgeom.StrokeStyle
	if 0.0 < cmd.StrokeWidth {
		stroke = &svgeom.StrokeStyle{
			Width:      cmd.StrokeWidth,
			MiterLimit: cmd.MiterLimit,
			DashOffset: cmd.DashOffset,
		}
		if err := stroke.Cap.UnmarshalText([]byte(cmd.Cap)); err != nil {
			return nil, err
		} else if err := stroke.Join.UnmarshalText([]byte(cmd.Join)); err != nil {
			return nil, err
		}
		for _, s := range strings.FieldsFunc(cmd.Dash, func(r rune) bool { return r == ',' || r == ' ' }) {
			d, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("bad dash array: %w", err)
			}
			stroke.DashArray = append(stroke.DashArray, d)
		}
	}

	ds := []string{cmd.Input}
	if cmd.Input == "-" {
		ds = ds[:0]
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				ds = append(ds, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	shapes := make([]svgeom.Shape, 0, len(ds))
	for i, d := range ds {
		shapes = append(shapes, svgeom.Shape{
			ID:        fmt.Sprintf("path%d", i+1),
			D:         d,
			Transform: m,
			Fill:      fill,
			Stroke:    stroke,
		})
	}
	return shapes, nil
}

func (cmd *Flatten) process() (*svgeom.Session, error) {
	level := slog.LevelInfo
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	svgeom.SetLogger(logger)

	cfg, err := cmd.config()
	if err != nil {
		return nil, err
	}
	shapes, err := cmd.shapes()
	if err != nil {
		return nil, err
	}

	session := svgeom.NewSession(cfg)
	logger.Info("session started", "session", session.ID.String(), "shapes", len(shapes), "round_quality", cfg.RoundQuality())
	layers, err := session.ProcessShapes(context.Background(), shapes)
	if err != nil {
		return nil, err
	}
	polygons := 0
	for _, layer := range layers {
		polygons += len(layer.Fill) + len(layer.Stroke)
	}
	logger.Info("session finished", "session", session.ID.String(), "layers", len(layers), "polygons", polygons)
	return session, nil
}
