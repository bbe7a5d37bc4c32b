package analysis

import (
	"context"
	"fmt"

	"github.com/edp1096/toy-bv/pkg/kinetics"
)

const (
	DefaultPoints = 100000

	// Bounds of the overpotential selector (V)
	MinOverpotential = -1.5
	MaxOverpotential = 1.5
)

// Range is a closed overpotential interval in volts.
type Range struct {
	Lower float64
	Upper float64
}

func DefaultRange() Range {
	return Range{Lower: -0.05, Upper: 0.05}
}

func (r Range) Validate() error {
	if r.Lower > r.Upper {
		return fmt.Errorf("overpotential range: lower %g > upper %g", r.Lower, r.Upper)
	}
	return nil
}

// Samples expands the range into n evenly spaced points including both ends.
func (r Range) Samples(n int) ([]float64, error) {
	return Linspace(r.Lower, r.Upper, n)
}

// Linspace returns n evenly spaced values from lower to upper inclusive.
// The first and last values are exactly lower and upper.
func Linspace(lower, upper float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("linspace: need at least 1 point, got %d", n)
	}
	if lower > upper {
		return nil, fmt.Errorf("linspace: lower %g > upper %g", lower, upper)
	}

	vals := make([]float64, n)
	vals[0] = lower
	if n == 1 {
		return vals, nil
	}

	step := (upper - lower) / float64(n-1)
	for i := 1; i < n-1; i++ {
		vals[i] = lower + float64(i)*step
	}
	vals[n-1] = upper

	return vals, nil
}

var _ Analysis = (*Sweep)(nil)

// Sweep evaluates the kinetic curves over an overpotential range.
type Sweep struct {
	BaseAnalysis
	rng     Range
	points  int
	workers int // 0: serial
	etas    []float64
	curve   *kinetics.CurveResult
}

func NewSweep(rng Range, points, workers int) *Sweep {
	return &Sweep{
		BaseAnalysis: *NewBaseAnalysis(),
		rng:          rng,
		points:       points,
		workers:      workers,
	}
}

func (s *Sweep) Setup(params kinetics.KineticParameters) error {
	var err error

	s.Params = params
	s.etas, err = s.rng.Samples(s.points)
	if err != nil {
		return fmt.Errorf("sweep setup: %w", err)
	}

	return nil
}

func (s *Sweep) Execute() error {
	return s.ExecuteContext(context.Background())
}

func (s *Sweep) ExecuteContext(ctx context.Context) error {
	var err error
	var curve *kinetics.CurveResult

	if s.etas == nil {
		return fmt.Errorf("sweep not set up")
	}

	if s.workers > 0 {
		curve, err = kinetics.EvaluateParallel(ctx, s.Params, s.etas, s.workers)
	} else {
		curve, err = kinetics.Evaluate(s.Params, s.etas)
	}
	if err != nil {
		return fmt.Errorf("sweep %g..%g V: %w", s.rng.Lower, s.rng.Upper, err)
	}

	s.curve = curve
	s.StoreCurve(curve)

	return nil
}

// Curve returns the last evaluated curve, or nil before Execute.
func (s *Sweep) Curve() *kinetics.CurveResult {
	return s.curve
}

func (s *Sweep) Range() Range {
	return s.rng
}
