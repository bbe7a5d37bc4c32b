package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaradayConstant(t *testing.T) {
	assert.InEpsilon(t, 96485.33212, FARADAY, 1e-9)
	assert.InEpsilon(t, 96485.332, FARADAY, 1e-6)
}

func TestGasConstant(t *testing.T) {
	assert.InEpsilon(t, 8.314462618, GAS, 1e-9)
	assert.InEpsilon(t, 8.314, GAS, 1e-4)
}

func TestCelsiusToKelvin(t *testing.T) {
	assert.Equal(t, 293.15, CelsiusToKelvin(20))
	assert.Equal(t, 0.0, CelsiusToKelvin(-273.15))
}
