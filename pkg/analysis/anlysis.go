package analysis

import (
	"github.com/edp1096/toy-bv/pkg/kinetics"
)

// Result keys
const (
	KeyOverpotential = "ETA"
	KeyAnodic        = "JA"
	KeyCathodic      = "JC"
	KeyNet           = "J"
)

type Analysis interface {
	Setup(params kinetics.KineticParameters) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Params  kinetics.KineticParameters
	results map[string][]float64 // key: variable name, value: result by sample
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

// StoreCurve replaces the stored results with the columns of curve.
// The map shares the curve's slices.
func (a *BaseAnalysis) StoreCurve(curve *kinetics.CurveResult) {
	a.results = map[string][]float64{
		KeyOverpotential: curve.Overpotential,
		KeyAnodic:        curve.Anodic,
		KeyCathodic:      curve.Cathodic,
		KeyNet:           curve.Net,
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}
