package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-bv/pkg/kinetics"
)

func TestLinspaceEndpointsInclusive(t *testing.T) {
	vals, err := Linspace(-0.05, 0.05, DefaultPoints)
	require.NoError(t, err)

	assert.Len(t, vals, DefaultPoints)
	assert.Equal(t, -0.05, vals[0])
	assert.Equal(t, 0.05, vals[len(vals)-1])
	for i := 1; i < len(vals); i++ {
		if !(vals[i] > vals[i-1]) {
			t.Fatalf("samples not increasing at %d", i)
		}
	}
}

func TestLinspaceThreePoints(t *testing.T) {
	vals, err := Linspace(-0.05, 0.05, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.05, 0, 0.05}, vals)
}

func TestLinspaceEdgeCases(t *testing.T) {
	vals, err := Linspace(0.2, 0.7, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2}, vals)

	vals, err = Linspace(0.1, 0.1, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.1, 0.1, 0.1}, vals)

	_, err = Linspace(0, 1, 0)
	assert.Error(t, err)

	_, err = Linspace(1, 0, 10)
	assert.Error(t, err)
}

func TestRangeValidate(t *testing.T) {
	assert.NoError(t, DefaultRange().Validate())
	assert.Error(t, Range{Lower: 0.1, Upper: -0.1}.Validate())
}

func TestSweepExecute(t *testing.T) {
	sweep := NewSweep(Range{Lower: -0.05, Upper: 0.05}, 3, 0)
	require.NoError(t, sweep.Setup(kinetics.DefaultParameters()))
	require.NoError(t, sweep.Execute())

	results := sweep.GetResults()
	assert.Equal(t, []float64{-0.05, 0, 0.05}, results[KeyOverpotential])
	assert.Len(t, results[KeyAnodic], 3)
	assert.Len(t, results[KeyCathodic], 3)
	require.Len(t, results[KeyNet], 3)
	assert.InDelta(t, -0.0023186, results[KeyNet][0], 1e-7)
	assert.Equal(t, 0.0, results[KeyNet][1])
	assert.InDelta(t, 0.0023186, results[KeyNet][2], 1e-7)

	curve := sweep.Curve()
	require.NotNil(t, curve)
	assert.Equal(t, curve.Net, results[KeyNet])
}

func TestSweepParallelMatchesSerial(t *testing.T) {
	params := kinetics.KineticParameters{ExchangeCurrentDensity: 2e-3, SymmetryFactor: 0.6, ElectronCount: 2, Temperature: 300}
	rng := Range{Lower: -0.2, Upper: 0.3}

	serial := NewSweep(rng, 20000, 0)
	require.NoError(t, serial.Setup(params))
	require.NoError(t, serial.Execute())

	parallel := NewSweep(rng, 20000, 4)
	require.NoError(t, parallel.Setup(params))
	require.NoError(t, parallel.ExecuteContext(context.Background()))

	assert.Equal(t, serial.Curve(), parallel.Curve())
}

func TestSweepErrors(t *testing.T) {
	sweep := NewSweep(DefaultRange(), 10, 0)
	assert.Error(t, sweep.Execute(), "execute before setup")
	assert.Nil(t, sweep.Curve())

	bad := NewSweep(Range{Lower: 1, Upper: -1}, 10, 0)
	assert.Error(t, bad.Setup(kinetics.DefaultParameters()))

	params := kinetics.DefaultParameters()
	params.Temperature = 0
	require.NoError(t, sweep.Setup(params))
	err := sweep.Execute()
	assert.ErrorIs(t, err, kinetics.ErrDomain)
	assert.Nil(t, sweep.Curve())
	assert.Empty(t, sweep.GetResults())
}
