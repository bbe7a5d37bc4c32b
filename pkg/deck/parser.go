// Package deck reads SPICE-style parameter decks for a kinetic sweep.
//
//	* Fe3+/Fe2+ on Pt
//	.param j0=1m alpha=0.5 z=1
//	.temp 20
//	.sweep -50m 50m 100000
//	.end
package deck

import (
	"bufio"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-bv/internal/consts"
	"github.com/edp1096/toy-bv/pkg/analysis"
	"github.com/edp1096/toy-bv/pkg/kinetics"
)

type Deck struct {
	Title  string
	Params kinetics.KineticParameters
	Range  analysis.Range
	Points int
}

func Default() Deck {
	return Deck{
		Params: kinetics.DefaultParameters(),
		Range:  analysis.DefaultRange(),
		Points: analysis.DefaultPoints,
	}
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"M":   1e-3,  // milli
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var (
	valueRe  = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?$`)
	spaceRe  = regexp.MustCompile(`\s+`)
	assignRe = regexp.MustCompile(`\s*=\s*`)
)

// Parse reads a deck on top of the default inputs.
func Parse(input string) (*Deck, error) {
	return ParseOver(input, Default())
}

// ParseOver reads a deck; anything the deck does not set keeps its value
// from base.
func ParseOver(input string, base Deck) (*Deck, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	d := base

	// Title
	if scanner.Scan() {
		d.Title = strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "*"))
	}

	var currentLine string
	lineNo := 1
	startNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Comment, whole line or trailing
		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if len(line) == 0 {
			continue
		}

		// Line continue
		if strings.HasPrefix(line, "+") {
			if currentLine == "" {
				return nil, fmt.Errorf("line %d: continuation without a directive", lineNo)
			}
			currentLine += " " + strings.TrimSpace(line[1:])
			continue
		}

		if currentLine != "" {
			done, err := parseLine(&d, currentLine)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", startNo, err)
			}
			if done {
				return &d, nil
			}
		}
		currentLine = line
		startNo = lineNo
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	if currentLine != "" {
		if _, err := parseLine(&d, currentLine); err != nil {
			return nil, fmt.Errorf("line %d: %w", startNo, err)
		}
	}

	return &d, nil
}

// parseLine handles one directive and reports whether it was .end.
func parseLine(d *Deck, line string) (bool, error) {
	line = spaceRe.ReplaceAllString(line, " ")
	line = assignRe.ReplaceAllString(line, "=")

	fields := strings.Fields(line)
	if !strings.HasPrefix(fields[0], ".") {
		return false, fmt.Errorf("expected a directive, got %q", fields[0])
	}

	switch strings.ToLower(fields[0]) {
	case ".param":
		return false, parseParams(d, fields[1:])

	case ".temp":
		if len(fields) != 2 {
			return false, fmt.Errorf(".temp needs one value in degC")
		}
		c, err := ParseValue(fields[1])
		if err != nil {
			return false, fmt.Errorf("invalid temperature: %v", err)
		}
		d.Params.Temperature = consts.CelsiusToKelvin(c)

	case ".sweep":
		if len(fields) < 3 || len(fields) > 4 {
			return false, fmt.Errorf(".sweep needs lower, upper and optional points")
		}
		lower, err := ParseValue(fields[1])
		if err != nil {
			return false, fmt.Errorf("invalid lower overpotential: %v", err)
		}
		upper, err := ParseValue(fields[2])
		if err != nil {
			return false, fmt.Errorf("invalid upper overpotential: %v", err)
		}
		rng := analysis.Range{Lower: lower, Upper: upper}
		if err := rng.Validate(); err != nil {
			return false, err
		}
		d.Range = rng

		if len(fields) == 4 {
			points, err := strconv.Atoi(fields[3])
			if err != nil || points < 1 {
				return false, fmt.Errorf("invalid points number: %s", fields[3])
			}
			d.Points = points
		}

	case ".end":
		return true, nil

	default:
		return false, fmt.Errorf("unsupported directive: %s", fields[0])
	}

	return false, nil
}

func parseParams(d *Deck, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf(".param needs name=value pairs")
	}

	for _, field := range fields {
		name, raw, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("invalid parameter %q, want name=value", field)
		}
		value, err := ParseValue(raw)
		if err != nil {
			return fmt.Errorf("parameter %s: %v", name, err)
		}

		switch strings.ToLower(name) {
		case "j0":
			d.Params.ExchangeCurrentDensity = value
		case "alpha":
			d.Params.SymmetryFactor = value
		case "z":
			if value != math.Trunc(value) {
				return fmt.Errorf("parameter z: %g is not an integer", value)
			}
			d.Params.ElectronCount = int(value)
		case "temp":
			d.Params.Temperature = value
		default:
			return fmt.Errorf("unknown parameter: %s", name)
		}
	}

	return nil
}

// ParseValue parses a number with an optional SPICE magnitude suffix.
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	// factor
	if matches[2] != "" {
		num *= unitMap[matches[2]]
	}

	return num, nil
}
