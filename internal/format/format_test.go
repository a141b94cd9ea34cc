package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	assert.Equal(t, "0", Int(0))
	assert.Equal(t, "999", Int(999))
	assert.Equal(t, "18.248", Int(18248))
	assert.Equal(t, "1.000.000", Int(1000000))
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		want      string
	}{
		{1234.567, 2, "1.234,57"},
		{105.9592014, 1, "106,0"},
		{3.462719, 2, "3,46"},
		{41640.48, 0, "41.640"},
		{-0.25, 1, "-0,3"},
		{-1500.5, 1, "-1.500,5"},
		{0, 2, "0,00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Float(tt.in, tt.precision), "%v/%d", tt.in, tt.precision)
	}
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "106,0 t CO2e", Tons(105.9592014))
	assert.Equal(t, "3,46 kg CO2e", Kg(3.462719))
	assert.Equal(t, "41.640 kr.", DKK(41640.48))
}

func TestFloat_OutOfRange(t *testing.T) {
	assert.Equal(t, "100000000000000000000", Float(1e20, 0))
	assert.Equal(t, "-100000000000000000000", Float(-1e20, 0))
	assert.Equal(t, "+Inf", Float(math.Inf(1), 0))
	assert.Equal(t, "NaN", Float(math.NaN(), 2))
	assert.Equal(t, "100000000000000000000 kr.", DKK(1e20))
}
