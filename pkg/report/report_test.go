package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-bv/pkg/kinetics"
)

func threePoint(t *testing.T) *kinetics.CurveResult {
	t.Helper()
	curve, err := kinetics.Evaluate(kinetics.DefaultParameters(), []float64{-0.05, 0, 0.05})
	require.NoError(t, err)
	return curve
}

func TestWriteCSV(t *testing.T) {
	curve := threePoint(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, curve))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"eta", "ja", "jc", "j"}, rows[0])

	for i, row := range rows[1:] {
		require.Len(t, row, 4)
		net, err := strconv.ParseFloat(row[3], 64)
		require.NoError(t, err)
		// full precision round trip
		assert.Equal(t, curve.Net[i], net)
	}
	assert.Equal(t, "0", rows[2][0])
	assert.Equal(t, "0.001", rows[2][1])
	assert.Equal(t, "-0.001", rows[2][2])
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, kinetics.DefaultParameters(), threePoint(t)))

	out := buf.String()
	assert.Contains(t, out, "j0 = 1.000 mA/cm²")
	assert.Contains(t, out, "alpha       = 0.50")
	assert.Contains(t, out, "T               = 293.15 K")
	assert.Contains(t, out, "116.334 mV/dec")
	assert.Contains(t, out, "25.262 Ohm cm²")
	assert.Contains(t, out, "Sweep (3 points)")
	assert.Contains(t, out, "j=2.319 mA/cm²")
	assert.Contains(t, out, "j=-2.319 mA/cm²")
}

func TestPrintSummaryInvalidParameters(t *testing.T) {
	params := kinetics.DefaultParameters()
	params.ExchangeCurrentDensity = 0

	var buf bytes.Buffer
	err := PrintSummary(&buf, params, threePoint(t))
	assert.ErrorIs(t, err, kinetics.ErrDomain)
}

func TestPrintTable(t *testing.T) {
	etas := make([]float64, 11)
	for i := range etas {
		etas[i] = -0.05 + 0.01*float64(i)
	}
	curve, err := kinetics.Evaluate(kinetics.DefaultParameters(), etas)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintTable(&buf, curve, 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header (3 lines) + samples 0, 4, 8 and the last
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[3], "-50.000 mV"))
	assert.True(t, strings.HasPrefix(lines[6], "50.000 mV"))
}
