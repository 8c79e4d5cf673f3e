package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    string
		wantKg  float64
		wantErr error
	}{
		{name: "grams", value: 1000, unit: "g", wantKg: 1},
		{name: "kilograms", value: 150, unit: "kg", wantKg: 150},
		{name: "tonnes", value: 2.5, unit: "t", wantKg: 2500},
		{name: "tCO2e", value: 0.15, unit: "tCO2e", wantKg: 150},
		{name: "pounds", value: 100, unit: "lb", wantKg: 45.3592},
		{name: "case and spaces", value: 3, unit: " TCO2E ", wantKg: 3000},
		{name: "zero", value: 0, unit: "kg", wantKg: 0},
		{name: "unknown unit", value: 1, unit: "ton", wantErr: ErrInvalidUnit},
		{name: "empty unit", value: 1, unit: "", wantErr: ErrInvalidUnit},
		{name: "negative", value: -1, unit: "kg", wantErr: ErrNegativeValue},
		{name: "NaN", value: math.NaN(), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "infinity", value: math.Inf(1), unit: "kg", wantErr: ErrCalculationOverflow},
		{name: "product overflows", value: math.MaxFloat64 / 100, unit: "t", wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, got, tt.wantKg*0.0001+0.0001)
		})
	}
}
