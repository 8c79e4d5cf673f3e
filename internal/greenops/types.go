// Package greenops turns an emissions total into relatable equivalencies,
// an offsetting estimate and reduction tips.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyCarKilometers converts CO2e to kilometers driven by car.
	EquivalencyCarKilometers EquivalencyType = iota

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyCarKilometers:
		return "CarKilometers"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is an emission amount with its unit.
type CarbonInput struct {
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb or their CO2e variants.
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results are in display order: car, trees, smartphones.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose line shown under the results table.
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form used in the TUI footer.
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}

// OffsetEstimate is the cost of neutralizing an emissions total.
type OffsetEstimate struct {
	Tonnes         float64 `json:"tonnes" yaml:"tonnes"`
	PricePerTonne  float64 `json:"price_per_tonne" yaml:"price_per_tonne"`
	Currency       string  `json:"currency" yaml:"currency"`
	TotalCost      float64 `json:"total_cost" yaml:"total_cost"`
	Reforestation  float64 `json:"reforestation" yaml:"reforestation"`
	FormattedTotal string  `json:"formatted_total" yaml:"formatted_total"`
}
