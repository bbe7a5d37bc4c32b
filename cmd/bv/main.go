package main // import "github.com/edp1096/toy-bv/cmd/bv"

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/edp1096/toy-bv/internal/config"
	"github.com/edp1096/toy-bv/pkg/analysis"
	"github.com/edp1096/toy-bv/pkg/deck"
	"github.com/edp1096/toy-bv/pkg/kinetics"
	"github.com/edp1096/toy-bv/pkg/plot"
	"github.com/edp1096/toy-bv/pkg/report"
)

type options struct {
	cfg      config.Config
	deckPath string
	title    string
	csvPath  string
	plotPath string
	every    int
	verbose  bool
}

func parseArgs(args []string, base config.Config) (*options, error) {
	opts := &options{cfg: base}
	cfg := &opts.cfg

	fs := flag.NewFlagSet("bv", flag.ContinueOnError)
	fs.Float64Var(&cfg.ExchangeCurrentDensity, "j0", cfg.ExchangeCurrentDensity, "exchange current density (A/cm²)")
	fs.Float64Var(&cfg.SymmetryFactor, "alpha", cfg.SymmetryFactor, "symmetry factor")
	fs.IntVar(&cfg.ElectronCount, "z", cfg.ElectronCount, "number of electrons transferred")
	fs.Float64Var(&cfg.Temperature, "temp", cfg.Temperature, "temperature (K)")
	fs.Float64Var(&cfg.EtaMin, "eta-min", cfg.EtaMin, "lower overpotential (V)")
	fs.Float64Var(&cfg.EtaMax, "eta-max", cfg.EtaMax, "upper overpotential (V)")
	fs.IntVar(&cfg.Points, "points", cfg.Points, "number of overpotential samples")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = serial)")
	fs.StringVar(&opts.csvPath, "csv", "", "write the curves to a CSV file")
	fs.StringVar(&opts.plotPath, "plot", "", "write a chart (.png or .svg)")
	fs.IntVar(&opts.every, "table", 0, "print every n-th sample (0 = no table)")
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, errors.New("usage: bv [flags] [deck_file]")
	}
	if fs.NArg() == 0 {
		return opts, nil
	}

	// Deck values sit between the environment and explicit flags.
	opts.deckPath = fs.Arg(0)
	content, err := os.ReadFile(opts.deckPath)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}
	d, err := deck.ParseOver(string(content), deckFromConfig(base))
	if err != nil {
		return nil, fmt.Errorf("parsing deck %s: %w", opts.deckPath, err)
	}

	opts.title = d.Title
	merged := configFromDeck(base, d)
	fs.Visit(func(f *flag.Flag) {
		overrideFromFlag(&merged, opts.cfg, f.Name)
	})
	opts.cfg = merged

	return opts, nil
}

func deckFromConfig(cfg config.Config) deck.Deck {
	return deck.Deck{
		Params: cfg.Params(),
		Range:  cfg.Range(),
		Points: cfg.Points,
	}
}

func configFromDeck(cfg config.Config, d *deck.Deck) config.Config {
	cfg.ExchangeCurrentDensity = d.Params.ExchangeCurrentDensity
	cfg.SymmetryFactor = d.Params.SymmetryFactor
	cfg.ElectronCount = d.Params.ElectronCount
	cfg.Temperature = d.Params.Temperature
	cfg.EtaMin = d.Range.Lower
	cfg.EtaMax = d.Range.Upper
	cfg.Points = d.Points
	return cfg
}

func overrideFromFlag(dst *config.Config, src config.Config, name string) {
	switch name {
	case "j0":
		dst.ExchangeCurrentDensity = src.ExchangeCurrentDensity
	case "alpha":
		dst.SymmetryFactor = src.SymmetryFactor
	case "z":
		dst.ElectronCount = src.ElectronCount
	case "temp":
		dst.Temperature = src.Temperature
	case "eta-min":
		dst.EtaMin = src.EtaMin
	case "eta-max":
		dst.EtaMax = src.EtaMax
	case "points":
		dst.Points = src.Points
	case "workers":
		dst.Workers = src.Workers
	}
}

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}

	params := cfg.Params()
	if params.SymmetryFactor < 0 || params.SymmetryFactor > 1 {
		log.Printf("warning: symmetry factor %g outside [0, 1]", params.SymmetryFactor)
	}

	// 1. Setup sweep
	sweep := analysis.NewSweep(cfg.Range(), cfg.Points, cfg.Workers)
	if err := sweep.Setup(params); err != nil {
		return fmt.Errorf("sweep setup failed: %w", err)
	}
	if opts.verbose {
		log.Printf("sweep %g..%g V, %d points, %d workers", cfg.EtaMin, cfg.EtaMax, cfg.Points, cfg.Workers)
	}

	// 2. Evaluate
	if err := sweep.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("sweep execution failed: %w", err)
	}
	curve := sweep.Curve()

	// 3. Print result
	if err := report.PrintSummary(stdout, params, curve); err != nil {
		return err
	}
	if opts.every > 0 {
		report.PrintTable(stdout, curve, opts.every)
	}

	// 4. Export
	if opts.csvPath != "" {
		if err := writeFile(opts.csvPath, func(w io.Writer) error {
			return report.WriteCSV(w, curve)
		}); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("wrote %s", opts.csvPath)
		}
	}
	if opts.plotPath != "" {
		format, err := plot.FormatFromPath(opts.plotPath)
		if err != nil {
			return err
		}
		plotOpts := plot.Options{
			Title:  plotTitle(opts),
			Width:  cfg.PlotWidth,
			Height: cfg.PlotHeight,
			Format: format,
		}
		if err := writeFile(opts.plotPath, func(w io.Writer) error {
			return plot.Render(w, curve, plotOpts)
		}); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("wrote %s", opts.plotPath)
		}
	}

	return nil
}

func plotTitle(opts *options) string {
	if opts.title == "" {
		return "Butler-Volmer"
	}
	return opts.title
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	opts, err := parseArgs(os.Args[1:], cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Error: %v", err)
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		if errors.Is(err, kinetics.ErrDomain) {
			log.Fatalf("Invalid input: %v", err)
		}
		log.Fatalf("Error: %v", err)
	}
}
