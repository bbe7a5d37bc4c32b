package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/edp1096/toy-bv/pkg/analysis"
	"github.com/edp1096/toy-bv/pkg/kinetics"
)

// Config holds the inputs of one sweep. Defaults match the interactive
// input defaults; every field can be overridden from the environment.
type Config struct {
	ExchangeCurrentDensity float64 `env:"BV_J0" envDefault:"0.001"`
	SymmetryFactor         float64 `env:"BV_ALPHA" envDefault:"0.5"`
	ElectronCount          int     `env:"BV_Z" envDefault:"1"`
	Temperature            float64 `env:"BV_TEMP" envDefault:"293.15"`

	EtaMin  float64 `env:"BV_ETA_MIN" envDefault:"-0.05"`
	EtaMax  float64 `env:"BV_ETA_MAX" envDefault:"0.05"`
	Points  int     `env:"BV_POINTS" envDefault:"100000"`
	Workers int     `env:"BV_WORKERS" envDefault:"0"`

	PlotWidth  int `env:"BV_PLOT_WIDTH" envDefault:"1024"`
	PlotHeight int `env:"BV_PLOT_HEIGHT" envDefault:"640"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate applies the input-side limits. Physical preconditions
// (positive j0 and T) are left to the evaluator.
func (c Config) Validate() error {
	if c.EtaMin > c.EtaMax {
		return fmt.Errorf("overpotential range: min %g > max %g", c.EtaMin, c.EtaMax)
	}
	if c.EtaMin < analysis.MinOverpotential || c.EtaMax > analysis.MaxOverpotential {
		return fmt.Errorf("overpotential range [%g, %g] V outside [%g, %g] V",
			c.EtaMin, c.EtaMax, analysis.MinOverpotential, analysis.MaxOverpotential)
	}
	if c.Points < 1 {
		return fmt.Errorf("points must be at least 1, got %d", c.Points)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func (c Config) Params() kinetics.KineticParameters {
	return kinetics.KineticParameters{
		ExchangeCurrentDensity: c.ExchangeCurrentDensity,
		SymmetryFactor:         c.SymmetryFactor,
		ElectronCount:          c.ElectronCount,
		Temperature:            c.Temperature,
	}
}

func (c Config) Range() analysis.Range {
	return analysis.Range{Lower: c.EtaMin, Upper: c.EtaMax}
}
