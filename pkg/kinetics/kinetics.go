// Package kinetics evaluates the Butler-Volmer relation between
// overpotential and electrode current density.
//
//	j = j0 * [ exp(a*z*F*eta/(R*T)) - exp(-(1-a)*z*F*eta/(R*T)) ]
//
// All functions are pure and safe for concurrent use.
package kinetics

import (
	"math"

	"github.com/edp1096/toy-bv/internal/consts"
)

type KineticParameters struct {
	ExchangeCurrentDensity float64 // j0 (A/cm^2)
	SymmetryFactor         float64 // alpha, nominally in [0, 1]
	ElectronCount          int     // z
	Temperature            float64 // T (K)
}

func DefaultParameters() KineticParameters {
	return KineticParameters{
		ExchangeCurrentDensity: 0.001,
		SymmetryFactor:         0.5,
		ElectronCount:          1,
		Temperature:            293.15,
	}
}

// Validate checks the physical preconditions of the model. The symmetry
// factor and electron count are not checked: any value gives a defined curve.
func (p KineticParameters) Validate() error {
	// Negated comparisons so NaN is rejected too.
	if !(p.ExchangeCurrentDensity > 0) {
		return domainError("exchange current density", p.ExchangeCurrentDensity, "must be positive")
	}
	if !(p.Temperature > 0) {
		return domainError("temperature", p.Temperature, "must be positive")
	}
	return nil
}

// ThermalFactor returns F/(R*T) in 1/V.
func ThermalFactor(temp float64) float64 {
	return consts.FARADAY / (consts.GAS * temp)
}

func (p KineticParameters) exponents() (anodic, cathodic float64) {
	zf := float64(p.ElectronCount) * ThermalFactor(p.Temperature)
	return p.SymmetryFactor * zf, (1 - p.SymmetryFactor) * zf
}

// Anodic returns the oxidation partial current density at eta.
func Anodic(p KineticParameters, eta float64) float64 {
	ka, _ := p.exponents()
	return p.ExchangeCurrentDensity * math.Exp(ka*eta)
}

// Cathodic returns the reduction partial current density at eta. It is
// negative for positive j0.
func Cathodic(p KineticParameters, eta float64) float64 {
	_, kc := p.exponents()
	return -p.ExchangeCurrentDensity * math.Exp(-kc*eta)
}

func Net(p KineticParameters, eta float64) float64 {
	return Anodic(p, eta) + Cathodic(p, eta)
}

type Point struct {
	Overpotential float64
	Anodic        float64
	Cathodic      float64
	Net           float64
}

// CurveResult holds the evaluated curves as index-aligned slices.
type CurveResult struct {
	Overpotential []float64 // V
	Anodic        []float64 // A/cm^2
	Cathodic      []float64 // A/cm^2
	Net           []float64 // A/cm^2
}

func newCurveResult(n int) *CurveResult {
	return &CurveResult{
		Overpotential: make([]float64, n),
		Anodic:        make([]float64, n),
		Cathodic:      make([]float64, n),
		Net:           make([]float64, n),
	}
}

func (r *CurveResult) Len() int {
	return len(r.Overpotential)
}

func (r *CurveResult) At(i int) Point {
	return Point{
		Overpotential: r.Overpotential[i],
		Anodic:        r.Anodic[i],
		Cathodic:      r.Cathodic[i],
		Net:           r.Net[i],
	}
}

// fill evaluates samples [lo, hi) of etas into r.
func (r *CurveResult) fill(p KineticParameters, etas []float64, lo, hi int) {
	ka, kc := p.exponents()
	j0 := p.ExchangeCurrentDensity
	for i := lo; i < hi; i++ {
		eta := etas[i]
		ja := j0 * math.Exp(ka*eta)
		jc := -j0 * math.Exp(-kc*eta)

		r.Overpotential[i] = eta
		r.Anodic[i] = ja
		r.Cathodic[i] = jc
		r.Net[i] = ja + jc
	}
}

func checkInput(p KineticParameters, etas []float64) error {
	if len(etas) == 0 {
		return domainError("overpotential samples", 0, "must not be empty")
	}
	return p.Validate()
}

// Evaluate computes anodic, cathodic and net current density for every
// overpotential in etas. The returned result does not alias etas.
func Evaluate(p KineticParameters, etas []float64) (*CurveResult, error) {
	if err := checkInput(p, etas); err != nil {
		return nil, err
	}

	res := newCurveResult(len(etas))
	res.fill(p, etas, 0, len(etas))
	return res, nil
}
