package util

import (
	"fmt"
	"math"
)

// FormatValueFactor prints value with an SI prefix on unit, e.g. 2.319 mA/cm².
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case value == 0:
		return fmt.Sprintf("0.000 %s", unit)
	case math.IsInf(value, 0) || math.IsNaN(value):
		return fmt.Sprintf("%v %s", value, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3e %s", value, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatAxisValue is FormatValueFactor for chart ticks. go-chart passes
// tick values as interface{}.
func FormatAxisValue(unit string) func(v interface{}) string {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return FormatValueFactor(f, unit)
		}
		return ""
	}
}
