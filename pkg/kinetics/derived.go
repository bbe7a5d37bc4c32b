package kinetics

import "math"

// AnodicTafelSlope returns ln(10)/(alpha*z*f) in V/decade, the high-field
// slope of eta against log10(ja). It is +Inf when alpha*z is zero.
func AnodicTafelSlope(p KineticParameters) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	ka, _ := p.exponents()
	return tafel(ka), nil
}

// CathodicTafelSlope returns ln(10)/((1-alpha)*z*f) in V/decade.
func CathodicTafelSlope(p KineticParameters) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	_, kc := p.exponents()
	return tafel(kc), nil
}

func tafel(k float64) float64 {
	if k == 0 {
		return math.Inf(1)
	}
	return math.Ln10 / k
}

// ChargeTransferResistance returns the area-specific resistance
// 1/(dj/deta) at eta = 0, i.e. RT/(zFj0), in ohm*cm^2.
func ChargeTransferResistance(p KineticParameters) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	// dj/deta at 0 is j0*(ka+kc) = j0*z*f regardless of alpha.
	ka, kc := p.exponents()
	slope := p.ExchangeCurrentDensity * (ka + kc)
	if slope == 0 {
		return math.Inf(1), nil
	}
	return 1 / slope, nil
}
