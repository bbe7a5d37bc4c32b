package consts

// CODATA 2018 defining constants. F and R follow exactly from them.
const (
	CHARGE    = 1.602176634e-19 // Elementary charge (C)
	BOLTZMANN = 1.380649e-23    // Boltzmann constant (J/K)
	AVOGADRO  = 6.02214076e23   // Avogadro constant (1/mol)
	KELVIN    = 273.15          // Kelvin temperature (K)

	FARADAY = AVOGADRO * CHARGE    // Faraday constant (C/mol), 96485.33212
	GAS     = AVOGADRO * BOLTZMANN // Molar gas constant (J/(mol K)), 8.314462618
)

// CelsiusToKelvin converts a temperature in degC to K.
func CelsiusToKelvin(c float64) float64 {
	return c + KELVIN
}
