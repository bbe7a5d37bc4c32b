// Package plot draws kinetic curves as line charts.
package plot

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/edp1096/toy-bv/pkg/kinetics"
	"github.com/edp1096/toy-bv/pkg/util"
)

type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

const (
	XAxisLabel = "Overpotential (V)"
	YAxisLabel = "Current Density (A/cm²)"

	DefaultWidth     = 1024
	DefaultHeight    = 640
	DefaultMaxPoints = 2000
)

type Options struct {
	Title     string
	Width     int
	Height    int
	Format    Format
	MaxPoints int // per series, 0: DefaultMaxPoints
}

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return 0, fmt.Errorf("unsupported plot format %q (want .png or .svg)", filepath.Ext(path))
	}
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Butler-Volmer"
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.MaxPoints <= 0 {
		o.MaxPoints = DefaultMaxPoints
	}
	return o
}

// Chart builds the chart for curve: anodic, cathodic and net current
// density against overpotential.
func Chart(curve *kinetics.CurveResult, opts Options) (*chart.Chart, error) {
	if curve == nil || curve.Len() == 0 {
		return nil, fmt.Errorf("plot: empty curve")
	}
	opts = opts.withDefaults()

	idx := decimate(curve.Len(), opts.MaxPoints)
	xs := pick(curve.Overpotential, idx)

	// go-chart needs a non-empty x range.
	if xs[0] == xs[len(xs)-1] {
		return nil, fmt.Errorf("plot: overpotential range is a single point (%g V)", xs[0])
	}

	ch := &chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           XAxisLabel,
			ValueFormatter: util.FormatAxisValue("V"),
		},
		YAxis: chart.YAxis{
			Name:           YAxisLabel,
			ValueFormatter: util.FormatAxisValue("A/cm²"),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Anodic current ja",
				XValues: xs,
				YValues: pick(curve.Anodic, idx),
				Style:   lineStyle(chart.ColorRed),
			},
			chart.ContinuousSeries{
				Name:    "Cathodic current jc",
				XValues: xs,
				YValues: pick(curve.Cathodic, idx),
				Style:   lineStyle(chart.ColorGreen),
			},
			chart.ContinuousSeries{
				Name:    "Overall current j",
				XValues: xs,
				YValues: pick(curve.Net, idx),
				Style:   lineStyle(chart.ColorBlue),
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}

	return ch, nil
}

// Render writes the chart of curve to w.
func Render(w io.Writer, curve *kinetics.CurveResult, opts Options) error {
	ch, err := Chart(curve, opts)
	if err != nil {
		return err
	}

	provider := chart.PNG
	if opts.Format == FormatSVG {
		provider = chart.SVG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("plot: render: %w", err)
	}
	return nil
}
