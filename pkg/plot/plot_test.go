package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/edp1096/toy-bv/pkg/analysis"
	"github.com/edp1096/toy-bv/pkg/kinetics"
)

func defaultCurve(t *testing.T, points int) *kinetics.CurveResult {
	t.Helper()
	etas, err := analysis.DefaultRange().Samples(points)
	require.NoError(t, err)
	curve, err := kinetics.Evaluate(kinetics.DefaultParameters(), etas)
	require.NoError(t, err)
	return curve
}

func TestDecimate(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, decimate(3, 10))
	assert.Equal(t, []int{0}, decimate(1, 10))
	assert.Equal(t, []int{0, 9}, decimate(10, 1))

	idx := decimate(100000, 2000)
	require.Len(t, idx, 2000)
	assert.Equal(t, 0, idx[0])
	assert.Equal(t, 99999, idx[len(idx)-1])
	for i := 1; i < len(idx); i++ {
		if idx[i] <= idx[i-1] {
			t.Fatalf("indices not increasing at %d", i)
		}
	}
}

func TestChartSeries(t *testing.T) {
	curve := defaultCurve(t, 100000)

	ch, err := Chart(curve, Options{})
	require.NoError(t, err)

	assert.Equal(t, XAxisLabel, ch.XAxis.Name)
	assert.Equal(t, YAxisLabel, ch.YAxis.Name)
	require.Len(t, ch.Series, 3)

	names := []string{"Anodic current ja", "Cathodic current jc", "Overall current j"}
	for i, s := range ch.Series {
		cs, ok := s.(chart.ContinuousSeries)
		require.True(t, ok)
		assert.Equal(t, names[i], cs.Name)
		assert.Len(t, cs.XValues, DefaultMaxPoints)
		assert.Len(t, cs.YValues, DefaultMaxPoints)
		assert.Equal(t, -0.05, cs.XValues[0])
		assert.Equal(t, 0.05, cs.XValues[len(cs.XValues)-1])
	}

	// the curve itself is not decimated
	assert.Equal(t, 100000, curve.Len())
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, defaultCurve(t, 5000), Options{Width: 640, Height: 400})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, defaultCurve(t, 500), Options{Format: FormatSVG, Title: "Fe3+/Fe2+"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "Overpotential (V)")
}

func TestChartErrors(t *testing.T) {
	_, err := Chart(nil, Options{})
	assert.Error(t, err)

	single, err := kinetics.Evaluate(kinetics.DefaultParameters(), []float64{0.01})
	require.NoError(t, err)
	_, err = Chart(single, Options{})
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/curve.PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = FormatFromPath("curve.svg")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	_, err = FormatFromPath("curve.pdf")
	assert.Error(t, err)
}
