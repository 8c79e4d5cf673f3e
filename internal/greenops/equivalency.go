package greenops

import (
	"fmt"
	"math"
)

// Calculate normalizes input to kilograms and computes the car distance,
// tree seedling and smartphone equivalencies.
//
// Inputs below MinEquivalencyThresholdKg yield an empty output with InputKg
// set and no error. Unit errors are returned with an empty output.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	km := kg / TonsToKg * CarKmPerTonne
	trees := kg / EPATreeSeedlingFactor
	phones := kg / EPASmartphoneChargeFactor
	for _, v := range []float64{km, trees, phones} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
	}

	results := []EquivalencyResult{
		newResult(EquivalencyCarKilometers, km, "km driven by car"),
		newResult(EquivalencyTreeSeedlings, trees, "tree seedlings grown for 10 years"),
		newResult(EquivalencySmartphonesCharged, phones, "smartphones charged"),
	}

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s km, growing ~%s tree seedlings or charging ~%s smartphones",
			results[0].FormattedValue, results[1].FormattedValue, results[2].FormattedValue),
		CompactText: fmt.Sprintf("(≈ %s km, %s trees, %s phones)",
			results[0].FormattedValue, results[1].FormattedValue, results[2].FormattedValue),
	}, nil
}

// FromTonnes computes equivalencies for a report total in tCO2e. Invalid
// totals yield an empty output.
func FromTonnes(total float64) EquivalencyOutput {
	out, err := Calculate(CarbonInput{Value: total, Unit: "t"})
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}
	}
	return out
}

func newResult(typ EquivalencyType, v float64, label string) EquivalencyResult {
	return EquivalencyResult{
		Type:           typ,
		Value:          v,
		FormattedValue: formatEquivalencyValue(v),
		Label:          label,
	}
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
