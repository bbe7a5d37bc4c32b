package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/edp1096/toy-bv/pkg/kinetics"
	"github.com/edp1096/toy-bv/pkg/util"
)

var csvHeader = []string{"eta", "ja", "jc", "j"}

// WriteCSV writes one row per sample at full float64 precision.
func WriteCSV(w io.Writer, curve *kinetics.CurveResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(csvHeader))
	for i := range curve.Len() {
		p := curve.At(i)
		row[0] = strconv.FormatFloat(p.Overpotential, 'g', -1, 64)
		row[1] = strconv.FormatFloat(p.Anodic, 'g', -1, 64)
		row[2] = strconv.FormatFloat(p.Cathodic, 'g', -1, 64)
		row[3] = strconv.FormatFloat(p.Net, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func PrintSummary(w io.Writer, params kinetics.KineticParameters, curve *kinetics.CurveResult) error {
	ba, err := kinetics.AnodicTafelSlope(params)
	if err != nil {
		return err
	}
	bc, err := kinetics.CathodicTafelSlope(params)
	if err != nil {
		return err
	}
	rct, err := kinetics.ChargeTransferResistance(params)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nButler-Volmer Parameters:")
	fmt.Fprintln(w, "========================")
	fmt.Fprintf(w, "Exchange current density j0 = %s\n", util.FormatValueFactor(params.ExchangeCurrentDensity, "A/cm²"))
	fmt.Fprintf(w, "Symmetry factor alpha       = %.2f\n", params.SymmetryFactor)
	fmt.Fprintf(w, "Electrons transferred z     = %d\n", params.ElectronCount)
	fmt.Fprintf(w, "Temperature T               = %.2f K\n", params.Temperature)

	fmt.Fprintln(w, "\nDerived Quantities:")
	fmt.Fprintf(w, "Anodic Tafel slope          = %s/dec\n", util.FormatValueFactor(ba, "V"))
	fmt.Fprintf(w, "Cathodic Tafel slope        = %s/dec\n", util.FormatValueFactor(bc, "V"))
	fmt.Fprintf(w, "Charge transfer resistance  = %s\n", util.FormatValueFactor(rct, "Ohm cm²"))

	n := curve.Len()
	if n == 0 {
		return nil
	}
	first, last := curve.At(0), curve.At(n-1)
	fmt.Fprintf(w, "\nSweep (%d points):\n", n)
	fmt.Fprintf(w, "eta=%-12s j=%s\n", util.FormatValueFactor(first.Overpotential, "V"), util.FormatValueFactor(first.Net, "A/cm²"))
	fmt.Fprintf(w, "eta=%-12s j=%s\n", util.FormatValueFactor(last.Overpotential, "V"), util.FormatValueFactor(last.Net, "A/cm²"))

	return nil
}

// PrintTable prints every n-th sample and always the last one.
func PrintTable(w io.Writer, curve *kinetics.CurveResult, every int) {
	if every < 1 {
		every = 1
	}

	fmt.Fprintf(w, "\nOverpotential Sweep Results (%d points):\n", curve.Len())
	fmt.Fprintln(w, "Overpotential    Anodic             Cathodic           Net")
	fmt.Fprintln(w, "--------------------------------------------------------------------")

	n := curve.Len()
	for i := 0; i < n; i++ {
		if i%every != 0 && i != n-1 {
			continue
		}
		p := curve.At(i)
		fmt.Fprintf(w, "%-15s  %-17s  %-17s  %s\n",
			util.FormatValueFactor(p.Overpotential, "V"),
			util.FormatValueFactor(p.Anodic, "A/cm²"),
			util.FormatValueFactor(p.Cathodic, "A/cm²"),
			util.FormatValueFactor(p.Net, "A/cm²"))
	}
}
